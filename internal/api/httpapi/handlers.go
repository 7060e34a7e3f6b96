package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/entity/currency"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/logger"
	"max.ks1230/financegpt/internal/model/assistant"
	"max.ks1230/financegpt/internal/model/ledger"
	"max.ks1230/financegpt/internal/model/period"
)

const dateLayout = "2006-01-02"

// mutationResponse carries the changed entity and the achievements the
// change earned.
type mutationResponse struct {
	Data         interface{}           `json:"data,omitempty"`
	Achievements []finance.Achievement `json:"achievements"`
}

type expenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Date        string  `json:"date"`
}

type incomeRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

type categoryRequest struct {
	Name  string  `json:"name"`
	Limit float64 `json:"limit"`
}

type goalRequest struct {
	Description string  `json:"description"`
	Target      float64 `json:"target"`
	Deadline    string  `json:"deadline"`
}

type contributionRequest struct {
	Amount float64 `json:"amount"`
}

type holdingRequest struct {
	CoinID string  `json:"coinId"`
	Amount float64 `json:"amount"`
}

type settingsRequest struct {
	Currency       *string `json:"currency"`
	CryptoCurrency *string `json:"cryptoCurrency"`
	Playground     *bool   `json:"playground"`
}

type settingsResponse struct {
	Currency       currency.Currency `json:"currency"`
	CryptoCurrency currency.Currency `json:"cryptoCurrency"`
	Playground     bool              `json:"playground"`
}

type chatImage struct {
	MimeType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

type chatRequest struct {
	Message string     `json:"message"`
	Image   *chatImage `json:"image"`
}

func (s *Server) parseDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), s.loc)
	if err != nil {
		return time.Time{}, errBadDate
	}
	return date, nil
}

// withLedger resolves the user's ledger and runs fn with it.
func (s *Server) withLedger(fn func(w http.ResponseWriter, r *http.Request, id int64, l *ledger.Ledger)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userID(r)
		if err != nil {
			writeFailure(w, err)
			return
		}
		fn(w, r, id, s.ledgers.Ledger(id))
	}
}

func (s *Server) respondMutation(w http.ResponseWriter, r *http.Request, l *ledger.Ledger, status int, data interface{}) {
	achs := s.advisor.CelebrateAwards(r.Context(), l)
	if achs == nil {
		achs = []finance.Achievement{}
	}
	writeJSON(w, status, mutationResponse{Data: data, Achievements: achs})
}

func (s *Server) settings(ctx context.Context, id int64) (settingsResponse, error) {
	rec, err := s.users.GetUser(ctx, id)
	if err != nil {
		return settingsResponse{}, errors.Wrap(err, "get user")
	}
	return settingsResponse{
		Currency:       currency.FindOrDefault(rec.PreferredCurrency(s.app.BaseCurrency())),
		CryptoCurrency: currency.FindOrDefault(rec.CryptoCurrency(s.app.BaseCurrency())),
		Playground:     rec.Playground,
	}, nil
}

func (s *Server) handleCurrencies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, currency.Supported)
}

func (s *Server) handleCoins(w http.ResponseWriter, r *http.Request) {
	if s.coins == nil {
		writeJSON(w, http.StatusOK, []finance.Coin{})
		return
	}
	writeJSON(w, http.StatusOK, s.coins.SupportedCoins(r.Context()))
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	res, err := s.settings(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	var req settingsRequest
	if err = decode(r, &req); err != nil {
		writeFailure(w, err)
		return
	}

	rec, err := s.users.GetUser(r.Context(), id)
	if err != nil {
		writeFailure(w, errors.Wrap(err, "get user"))
		return
	}
	if req.Currency != nil {
		c, ok := currency.Find(*req.Currency)
		if !ok {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}
		rec.SetPreferredCurrency(c.Code)
	}
	if req.CryptoCurrency != nil {
		c, ok := currency.Find(*req.CryptoCurrency)
		if !ok {
			writeError(w, http.StatusBadRequest, "unsupported crypto currency")
			return
		}
		rec.SetCryptoCurrency(c.Code)
	}
	if req.Playground != nil {
		rec.Playground = *req.Playground
	}
	if err = s.users.SaveUser(r.Context(), id, rec); err != nil {
		writeFailure(w, errors.Wrap(err, "save user"))
		return
	}

	res, err := s.settings(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		var req expenseRequest
		if err := decode(r, &req); err != nil {
			writeFailure(w, err)
			return
		}
		date, err := s.parseDate(req.Date)
		if err != nil {
			writeFailure(w, err)
			return
		}
		e, err := l.AddExpense(finance.Expense{
			Description: req.Description,
			Amount:      req.Amount,
			Category:    req.Category,
			Subcategory: req.Subcategory,
			Date:        date,
		})
		if err != nil {
			writeFailure(w, err)
			return
		}
		s.respondMutation(w, r, l, http.StatusCreated, e)
	})(w, r)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		var req expenseRequest
		if err := decode(r, &req); err != nil {
			writeFailure(w, err)
			return
		}
		date, err := s.parseDate(req.Date)
		if err != nil {
			writeFailure(w, err)
			return
		}
		e, err := l.UpdateExpense(finance.Expense{
			ID:          chi.URLParam(r, "id"),
			Description: req.Description,
			Amount:      req.Amount,
			Category:    req.Category,
			Subcategory: req.Subcategory,
			Date:        date,
		})
		if err != nil {
			writeFailure(w, err)
			return
		}
		s.respondMutation(w, r, l, http.StatusOK, e)
	})(w, r)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		if err := l.DeleteExpense(chi.URLParam(r, "id")); err != nil {
			writeFailure(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})(w, r)
}

func (s *Server) handleAddIncome(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		var req incomeRequest
		if err := decode(r, &req); err != nil {
			writeFailure(w, err)
			return
		}
		date, err := s.parseDate(req.Date)
		if err != nil {
			writeFailure(w, err)
			return
		}
		in, err := l.AddIncome(finance.Income{Description: req.Description, Amount: req.Amount, Date: date})
		if err != nil {
			writeFailure(w, err)
			return
		}
		s.respondMutation(w, r, l, http.StatusCreated, in)
	})(w, r)
}

func (s *Server) handleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		if err := l.DeleteIncome(chi.URLParam(r, "id")); err != nil {
			writeFailure(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})(w, r)
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		var req categoryRequest
		if err := decode(r, &req); err != nil {
			writeFailure(w, err)
			return
		}
		if err := l.AddCategory(req.Name, req.Limit); err != nil {
			writeFailure(w, err)
			return
		}
		s.respondMutation(w, r, l, http.StatusCreated, categoryRequest{Name: strings.TrimSpace(req.Name), Limit: req.Limit})
	})(w, r)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		var req categoryRequest
		if err := decode(r, &req); err != nil {
			writeFailure(w, err)
			return
		}
		name := chi.URLParam(r, "name")
		if err := l.UpdateCategory(name, req.Name, req.Limit); err != nil {
			writeFailure(w, err)
			return
		}
		if strings.TrimSpace(req.Name) != "" {
			name = strings.TrimSpace(req.Name)
		}
		s.respondMutation(w, r, l, http.StatusOK, categoryRequest{Name: name, Limit: req.Limit})
	})(w, r)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		if err := l.DeleteCategory(chi.URLParam(r, "name")); err != nil {
			writeFailure(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})(w, r)
}

func (s *Server) handleAddGoal(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		var req goalRequest
		if err := decode(r, &req); err != nil {
			writeFailure(w, err)
			return
		}
		goal := finance.Goal{Description: req.Description, Target: req.Target}
		deadline, err := s.parseDate(req.Deadline)
		if err != nil {
			writeFailure(w, err)
			return
		}
		if !deadline.IsZero() {
			goal.Deadline = &deadline
		}
		added, err := l.AddGoal(goal)
		if err != nil {
			writeFailure(w, err)
			return
		}
		s.respondMutation(w, r, l, http.StatusCreated, added)
	})(w, r)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		if err := l.DeleteGoal(chi.URLParam(r, "id")); err != nil {
			writeFailure(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})(w, r)
}

func (s *Server) handleContribute(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		var req contributionRequest
		if err := decode(r, &req); err != nil {
			writeFailure(w, err)
			return
		}
		goal, err := l.Contribute(chi.URLParam(r, "id"), req.Amount)
		if err != nil {
			writeFailure(w, err)
			return
		}
		s.respondMutation(w, r, l, http.StatusOK, goal)
	})(w, r)
}

func (s *Server) findCoin(ctx context.Context, id string) (finance.Coin, error) {
	if s.coins == nil {
		return finance.Coin{}, errUnknownCoin
	}
	coin, ok := s.coins.FindCoin(ctx, id)
	if !ok {
		return finance.Coin{}, errUnknownCoin
	}
	return coin, nil
}

func (s *Server) handleAddHolding(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		var req holdingRequest
		if err := decode(r, &req); err != nil {
			writeFailure(w, err)
			return
		}
		coin, err := s.findCoin(r.Context(), req.CoinID)
		if err != nil {
			writeFailure(w, err)
			return
		}
		h, err := l.AddHolding(finance.CryptoHolding{
			CoinID: coin.ID,
			Symbol: coin.Symbol,
			Name:   coin.Name,
			Amount: req.Amount,
		})
		if err != nil {
			writeFailure(w, err)
			return
		}
		s.respondMutation(w, r, l, http.StatusCreated, h)
	})(w, r)
}

func (s *Server) handleUpdateHolding(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		var req holdingRequest
		if err := decode(r, &req); err != nil {
			writeFailure(w, err)
			return
		}
		h := finance.CryptoHolding{ID: chi.URLParam(r, "id"), Amount: req.Amount}
		if req.CoinID != "" {
			coin, err := s.findCoin(r.Context(), req.CoinID)
			if err != nil {
				writeFailure(w, err)
				return
			}
			h.CoinID, h.Symbol, h.Name = coin.ID, coin.Symbol, coin.Name
		}
		updated, err := l.UpdateHolding(h)
		if err != nil {
			writeFailure(w, err)
			return
		}
		s.respondMutation(w, r, l, http.StatusOK, updated)
	})(w, r)
}

func (s *Server) handleDeleteHolding(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, _ int64, l *ledger.Ledger) {
		if err := l.DeleteHolding(chi.URLParam(r, "id")); err != nil {
			writeFailure(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})(w, r)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, id int64, l *ledger.Ledger) {
		var req chatRequest
		if err := decode(r, &req); err != nil {
			writeFailure(w, err)
			return
		}
		if strings.TrimSpace(req.Message) == "" && req.Image == nil {
			writeError(w, http.StatusBadRequest, "message or image is required")
			return
		}
		settings, err := s.settings(r.Context(), id)
		if err != nil {
			writeFailure(w, err)
			return
		}

		in := assistant.Input{
			Text:       req.Message,
			Currency:   settings.Currency,
			Playground: settings.Playground,
		}
		if req.Image != nil {
			in.Image = &assistant.Image{MimeType: req.Image.MimeType, Data: req.Image.Data}
		}

		reply, err := s.advisor.Ask(r.Context(), l, in)
		if err != nil {
			logger.Warn("assistant failed", zap.Int64("userID", id), zap.Error(err))
		}
		s.respondMutation(w, r, l, http.StatusOK, reply)
	})(w, r)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.withLedger(func(w http.ResponseWriter, r *http.Request, id int64, l *ledger.Ledger) {
		q := r.URL.Query()
		if mode := q.Get("period"); mode != "" {
			window, err := period.FromDates(mode, q.Get("start"), q.Get("end"), s.loc)
			if err != nil {
				writeFailure(w, err)
				return
			}
			if window != l.Window() {
				l.SetWindow(window)
			}
		}

		settings, err := s.settings(r.Context(), id)
		if err != nil {
			writeFailure(w, err)
			return
		}
		prices := finance.Prices{}
		if s.prices != nil {
			if stored, err := s.prices.GetPrices(r.Context()); err != nil {
				logger.Warn("cannot read prices", zap.Error(err))
			} else {
				prices = stored
			}
		}
		writeJSON(w, http.StatusOK, buildDashboard(l.View(), prices, settings))
	})(w, r)
}
