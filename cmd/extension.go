package cmd

import (
	"fmt"
	"os"
	"os/exec"
)

// Environment variables handed to extension processes, mirroring the global
// flags.
const (
	EnvPDFFile     = "VITGPA_PDF_FILE"
	EnvTableFiles  = "VITGPA_TABLE_FILES"
	EnvRecordsFile = "VITGPA_RECORDS_FILE"
	EnvConfigFile  = "VITGPA_CONFIG_FILE"
)

// RunExtension attempts to find and execute an external vitgpa-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "vitgpa-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass the global flags down so extensions read the same grade sheet.
	cmd.Env = append(os.Environ(),
		EnvPDFFile+"="+*pdfFile,
		EnvTableFiles+"="+*tableFiles,
		EnvRecordsFile+"="+*recordsFile,
		EnvConfigFile+"="+*configFile,
	)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
