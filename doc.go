// Package gpa provides the core engine behind the vitgpa command-line tool:
// it turns tables extracted from a university grade sheet into typed course
// records, computes the cumulative grade-point average (CGPA), and runs
// what-if simulations over the resulting credit ledger.
//
// The core functionalities include:
//   - Record Normalization: locating the header row inside raw extracted
//     tables, resolving columns, typing credits and dates, and resolving
//     retaken courses so that only the most recent attempt counts.
//   - Ledger Aggregation: reducing course records to a credit distribution
//     keyed by grade, and computing the CGPA from records or from a
//     distribution snapshot, with pass/fail credits excluded from the math.
//   - Simulation: pure credit-transfer and credit-addition operations over
//     distribution snapshots, enforcing grade validity and credit
//     conservation across chained edits.
//   - History Projection: replaying records in chronological order to
//     produce the cumulative CGPA over time.
//
// The package exposes plain data (records, distributions, series) and leaves
// extraction and rendering to its collaborators, ensuring the same results
// whether they are displayed, exported, or fed to the assistant.
package gpa
