package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/entity/currency"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/logger"
	"max.ks1230/financegpt/internal/model/ledger"
)

// FallbackMessage is the reply for every failed assistant call.
const FallbackMessage = "Sorry, I encountered an error. Please try again."

const deadlineLayout = "2006-01-02"

type Image struct {
	MimeType string
	Data     []byte
}

type Request struct {
	System string
	Prompt string
	Image  *Image
}

// Provider sends one completion request to a language model and returns
// the raw text of the answer.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

type Input struct {
	Text       string
	Image      *Image
	Currency   currency.Currency
	Playground bool
}

// Reply is what the user sees plus what was applied to the ledger.
type Reply struct {
	Text        string            `json:"text"`
	Type        ResponseType      `json:"responseType,omitempty"`
	Expenses    []finance.Expense `json:"expenses,omitempty"`
	Goal        *finance.Goal     `json:"goal,omitempty"`
	Contributed int               `json:"contributed,omitempty"`
}

type Service struct {
	provider Provider
	recent   int
}

func NewService(provider Provider, recent int) *Service {
	return &Service{
		provider: provider,
		recent:   recent,
	}
}

// Ask sends the user's input to the model and applies the structured answer
// to the ledger. On any failure the returned reply carries FallbackMessage.
func (s *Service) Ask(ctx context.Context, l *ledger.Ledger, in Input) (Reply, error) {
	view := l.View()
	finCtx := Context{
		Currency: in.Currency,
		Budget:   view.Budget,
		Goals:    view.Goals,
		Recent:   l.Recent(s.recent),
	}

	text, err := s.provider.Complete(ctx, Request{
		System: SystemPrompt(in.Playground, in.Currency.Code, view.Budget.Names()),
		Prompt: UserPrompt(finCtx, in.Text),
		Image:  in.Image,
	})
	if err != nil {
		return Reply{Text: FallbackMessage}, errors.Wrap(err, "calling assistant")
	}

	resp, err := ParseResponse(text)
	if err != nil {
		return Reply{Text: FallbackMessage}, errors.Wrap(err, "parsing assistant response")
	}

	reply := Reply{Text: resp.SummaryText, Type: resp.Type}
	if in.Playground {
		return reply, nil
	}
	if err = apply(l, resp, &reply); err != nil {
		return Reply{Text: FallbackMessage}, errors.Wrap(err, "applying assistant response")
	}
	return reply, nil
}

func apply(l *ledger.Ledger, resp Response, reply *Reply) error {
	switch resp.Type {
	case ExpenseLogged:
		if len(resp.Expenses) == 0 {
			return nil
		}
		batch := make([]finance.Expense, 0, len(resp.Expenses))
		for _, p := range resp.Expenses {
			if !(p.Amount > 0) {
				logger.Warn("skipping assistant expense without a positive amount",
					zap.String("description", p.Description), zap.Float64("amount", p.Amount))
				continue
			}
			batch = append(batch, finance.Expense{
				Description: p.Description,
				Amount:      p.Amount,
				Category:    p.Category,
				Subcategory: p.Subcategory,
			})
		}
		if len(batch) == 0 {
			return nil
		}
		added, err := l.AddExpenses(batch)
		if err != nil {
			return err
		}
		reply.Expenses = added

	case GoalCreated:
		if resp.Goal == nil || resp.Goal.Target == nil {
			return nil
		}
		goal := finance.Goal{
			Description: resp.Goal.Description,
			Target:      *resp.Goal.Target,
		}
		if deadline, err := time.Parse(deadlineLayout, strings.TrimSpace(resp.Goal.Deadline)); err == nil {
			goal.Deadline = &deadline
		}
		added, err := l.AddGoal(goal)
		if err != nil {
			return err
		}
		reply.Goal = &added

	case GoalUpdated:
		if resp.Goal == nil || resp.Goal.Description == "" || resp.Goal.Saved == nil {
			return nil
		}
		n, err := l.ContributeByDescription(resp.Goal.Description, *resp.Goal.Saved)
		if errors.Is(err, ledger.ErrGoalNotFound) {
			logger.Warn("assistant updated an unknown goal", zap.String("description", resp.Goal.Description))
			return nil
		}
		if err != nil {
			return err
		}
		reply.Contributed = n
	}
	return nil
}

// Celebrate asks the model for a short congratulation.
func (s *Service) Celebrate(ctx context.Context, occasion string) (string, error) {
	text, err := s.provider.Complete(ctx, Request{
		System: celebratePrompt,
		Prompt: celebrationPrompt(occasion),
	})
	if err != nil {
		return "", errors.Wrap(err, "celebrating")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("empty congratulation")
	}
	return text, nil
}

// CelebrateAwards writes a message for every award earned since the last
// call and stores it on the ledger. A fixed text replaces failed calls.
func (s *Service) CelebrateAwards(ctx context.Context, l *ledger.Ledger) []finance.Achievement {
	awards := l.TakeAwards()
	res := make([]finance.Achievement, 0, len(awards))
	for _, a := range awards {
		msg, err := s.Celebrate(ctx, a.Occasion)
		if err != nil {
			logger.Warn("congratulation failed", zap.String("achievement", a.ID), zap.Error(err))
			msg = a.DefaultMessage()
		}
		l.SetAchievementMessage(a.ID, msg)
		res = append(res, finance.Achievement{ID: a.ID, Title: a.Title, Message: msg})
	}
	return res
}
