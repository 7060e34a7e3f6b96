package assistant

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

type ResponseType string

const (
	ExpenseLogged    ResponseType = "EXPENSE_LOGGED"
	BudgetAnalysis   ResponseType = "BUDGET_ANALYSIS"
	GoalCreated      ResponseType = "GOAL_CREATED"
	GoalUpdated      ResponseType = "GOAL_UPDATED"
	GeneralAdvice    ResponseType = "GENERAL_ADVICE"
	ScenarioAnalysis ResponseType = "SCENARIO_ANALYSIS"
)

var ErrMalformedResponse = errors.New("malformed assistant response")

type ExpensePayload struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Subcategory string  `json:"subcategory,omitempty"`
}

// ExpenseList accepts both a single expense object and an array of them.
type ExpenseList []ExpensePayload

func (l *ExpenseList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = nil
		return nil
	case len(data) > 0 && data[0] == '[':
		var list []ExpensePayload
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*l = list
		return nil
	default:
		var single ExpensePayload
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*l = ExpenseList{single}
		return nil
	}
}

type GoalPayload struct {
	Description string   `json:"description"`
	Target      *float64 `json:"target,omitempty"`
	Saved       *float64 `json:"saved,omitempty"`
	Deadline    string   `json:"deadline,omitempty"`
}

type Response struct {
	Type        ResponseType `json:"response_type"`
	Expenses    ExpenseList  `json:"expense,omitempty"`
	Goal        *GoalPayload `json:"goal,omitempty"`
	SummaryText string       `json:"summary_text"`
}

// ParseResponse decodes the JSON object found between the first opening and
// the last closing brace of text.
func ParseResponse(text string) (Response, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return Response{}, errors.Wrap(ErrMalformedResponse, "no JSON object found")
	}

	var res Response
	if err := json.Unmarshal([]byte(text[start:end+1]), &res); err != nil {
		return Response{}, errors.Wrap(ErrMalformedResponse, err.Error())
	}
	if res.Type == "" || strings.TrimSpace(res.SummaryText) == "" {
		return Response{}, errors.Wrap(ErrMalformedResponse, "response_type and summary_text are required")
	}
	return res, nil
}
