package agent

import (
	"context"
	"fmt"
	"math"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
	"github.com/ManiPerez913/VIT-GPA-Calculator/docs"
	"github.com/ManiPerez913/VIT-GPA-Calculator/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a student asking about their grades: the CGPA, how single courses
			weigh on it, and what re-attempting or adding courses would change.
			If they sound worried about a result, get the facts from the Registrar before
			any advice.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request.

			The user will assume that you know their transcript, check the records first
			to understand what is in them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewCoach creates an expert grounding academic questions in search results.
func NewCoach() *Expert {
	return &Expert{
		Name: "Coach",
		Description: `This is a study coach,
		well aware of university grading regulations, re-registration rules and
		credit requirements.
		Ask the Coach whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a study coach for university students. You can search and find
			anything related to grading regulations, academic calendars, credit and
			degree requirements. You leverage Google Search to ground your assertions
			in a solid truth.
				`}}},
		},
	}
}

// NewRegistrar creates the expert in charge of the user's grade records. It
// loads the ledger through the given function, once per call, so the expert
// always answers on fresh records.
func NewRegistrar(load func() (*gpa.Ledger, error)) *Expert {
	lib := []Function{
		analysisFunc(load),
		distributionFunc(load),
		coursesFunc(load),
		improveFunc(load),
		futureFunc(load),
	}

	return &Expert{
		Name: "Registrar",
		Description: `This is the Registrar. It is in charge of reading the user's grade records.
		It can compute the CGPA, render the credit distribution, list the courses,
		and project what-if scenarios without touching the records.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a registrar in charge of the user's grade records.
				You know how to use the Tools to extract relevant information about the
				user's transcript. You are part of a team of experts, yours is everything
				about the user's courses, credits and CGPA. They might ask you questions
				in approximative language, figure out what they meant.

				Use the available tools to get information about the user's records
				  - the full analysis with the CGPA
				  - the credit distribution
				  - the list of courses
				  - what-if projections (grade transfers and future courses)
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func analysisFunc(load func() (*gpa.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Analysis",
			Description: `Analysis renders the full picture of the user's transcript: the CGPA,
			the credits on record, the credit distribution, and every course grouped by grade.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted analysis of the transcript.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := load()
			if err != nil {
				return errorResponse(id, "Analysis", err)
			}
			return outputResponse(id, "Analysis", renderer.AnalysisMarkdown(ledger.NewAnalysis()))
		},
	}
}

func distributionFunc(load func() (*gpa.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Distribution",
			Description: `Distribution renders how the user's credits split over the grade scale.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of credits per grade.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := load()
			if err != nil {
				return errorResponse(id, "Distribution", err)
			}
			return outputResponse(id, "Distribution", renderer.DistributionMarkdown(ledger.Distribution()))
		},
	}
}

func coursesFunc(load func() (*gpa.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Courses",
			Description: `Courses lists the user's course records in chronological order,
			optionally only those under one grade.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"grade": {
						Type: genai.TypeString,
						Description: `Only list courses graded with this letter. All courses by default.

						` + must(docs.GetTopic("grades")),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of course records.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := load()
			if err != nil {
				return errorResponse(id, "Courses", err)
			}
			var filters []func(gpa.CourseRecord) bool
			if _, ok := args["grade"]; ok {
				g, err := parseGradeArg(args, "grade")
				if err != nil {
					return errorResponse(id, "Courses", err)
				}
				filters = append(filters, gpa.ByGrade(g))
			}
			var records []gpa.CourseRecord
			for _, r := range ledger.Records(filters...) {
				records = append(records, r)
			}
			return outputResponse(id, "Courses", renderer.RecordsMarkdown(records))
		},
	}
}

func improveFunc(load func() (*gpa.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Improve",
			Description: `Improve projects the CGPA after moving credits from one grade to
			another, for instance after re-attempting a course. The records themselves
			never change.

			` + must(docs.GetTopic("simulate")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"from": {
						Type:        genai.TypeString,
						Description: "The grade to take credits from.",
					},
					"to": {
						Type:        genai.TypeString,
						Description: "The grade to move the credits to.",
					},
					"credits": {
						Type:        genai.TypeInteger,
						Description: "How many credits to move.",
					},
				},
				Required: []string{"from", "to", "credits"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted before/after projection.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := load()
			if err != nil {
				return errorResponse(id, "Improve", err)
			}
			from, err := parseGradeArg(args, "from")
			if err != nil {
				return errorResponse(id, "Improve", err)
			}
			to, err := parseGradeArg(args, "to")
			if err != nil {
				return errorResponse(id, "Improve", err)
			}
			credits, err := parseCreditsArg(args)
			if err != nil {
				return errorResponse(id, "Improve", err)
			}
			s, err := gpa.NewSimulation(ledger.Distribution(), gpa.Transfer{From: from, To: to, Credits: credits})
			if err != nil {
				return errorResponse(id, "Improve", err)
			}
			return outputResponse(id, "Improve", renderer.SimulationMarkdown(s))
		},
	}
}

func futureFunc(load func() (*gpa.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Future",
			Description: `Future projects the CGPA after new graded credits land on the
			records, for instance next semester's courses with their expected grades.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"grade": {
						Type:        genai.TypeString,
						Description: "The expected grade of the new credits.",
					},
					"credits": {
						Type:        genai.TypeInteger,
						Description: "How many credits the new courses carry.",
					},
				},
				Required: []string{"grade", "credits"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted before/after projection.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := load()
			if err != nil {
				return errorResponse(id, "Future", err)
			}
			g, err := parseGradeArg(args, "grade")
			if err != nil {
				return errorResponse(id, "Future", err)
			}
			credits, err := parseCreditsArg(args)
			if err != nil {
				return errorResponse(id, "Future", err)
			}
			s, err := gpa.NewSimulation(ledger.Distribution(), gpa.Addition{Grade: g, Credits: credits})
			if err != nil {
				return errorResponse(id, "Future", err)
			}
			return outputResponse(id, "Future", renderer.SimulationMarkdown(s))
		},
	}
}

func parseGradeArg(args map[string]any, key string) (gpa.Grade, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing argument %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", key, v)
	}
	g, err := gpa.ParseGrade(s)
	if err != nil {
		return "", fmt.Errorf("argument %q must be a valid grade, got %q. Below is the doc about grades\n\n%s", key, s, must(docs.GetTopic("grades")))
	}
	return g, nil
}

func parseCreditsArg(args map[string]any) (int, error) {
	v, ok := args["credits"]
	if !ok {
		return 0, fmt.Errorf(`missing argument "credits"`)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf(`argument "credits" is not a number as expected but %T`, v)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("credits must be a whole number, got %v", f)
	}
	return int(f), nil
}
