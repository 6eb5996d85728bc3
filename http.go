package bancogo

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type balanceJSONResp struct {
	Balance decimal.Decimal `json:"balance"`
}

func NewHTTPHandler(svc Service, log *zerolog.Logger) http.Handler {
	hndlr := &httpHandler{
		Svc: svc,
		Log: log,
	}
	mux := chi.NewMux()
	mux.NotFound(HTTPNotFound)
	mux.Post("/people", hndlr.RegisterPerson)
	mux.Get("/people/{identifier}", hndlr.FindPerson)
	mux.Post("/accounts", hndlr.OpenAccount)
	mux.Get("/accounts", hndlr.ListAccounts)
	mux.Route("/accounts/{acctNum:[0-9]+}", func(rr chi.Router) {
		rr.Post("/deposit", hndlr.Deposit)
		rr.Post("/withdraw", hndlr.Withdraw)
		rr.Get("/balance", hndlr.Balance)
		rr.Get("/report", hndlr.Report)
		rr.Get("/statement", hndlr.Statement)
	})

	return mux
}

type httpHandler struct {
	Svc Service
	Log *zerolog.Logger
}

func (h *httpHandler) RegisterPerson(w http.ResponseWriter, r *http.Request) {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", "register_person").Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return
	}
	var req RegisterPersonReq
	if err = json.Unmarshal(buf, &req); err != nil {
		h.Log.Err(err).Str("method", "register_person").Msg("error unmarshalling JSON")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON"}})
		return
	}
	p, err := h.Svc.RegisterPerson(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(p); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) FindPerson(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.FindPerson(chi.URLParam(r, "identifier"))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(p); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) OpenAccount(w http.ResponseWriter, r *http.Request) {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", "open_account").Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return
	}
	var req OpenAccountReq
	if err = json.Unmarshal(buf, &req); err != nil {
		h.Log.Err(err).Str("method", "open_account").Msg("error unmarshalling JSON")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON"}})
		return
	}
	acct, err := h.Svc.OpenAccount(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(acct); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	summaries := []Summary{}
	cur := h.Svc.Accounts()
	for {
		s, ok := cur.Next()
		if !ok {
			break
		}
		summaries = append(summaries, s)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summaries); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", "deposit").Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return
	}
	var req ChargeReq
	if err = json.Unmarshal(buf, &req); err != nil {
		h.Log.Err(err).Str("method", "deposit").Msg("error unmarshalling JSON")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON"}})
		return
	}
	req.AcctNum, err = acctNumParam(r)
	if err != nil {
		h.Log.Err(err).Str("method", "deposit").Msg("error parsing account number")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"acctNum": "invalid format"}})
		return
	}
	bal, err := h.Svc.Deposit(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	resp := balanceJSONResp{Balance: *bal}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", "withdraw").Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return
	}
	var req ChargeReq
	if err = json.Unmarshal(buf, &req); err != nil {
		h.Log.Err(err).Str("method", "withdraw").Msg("error unmarshalling JSON")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON"}})
		return
	}
	req.AcctNum, err = acctNumParam(r)
	if err != nil {
		h.Log.Err(err).Str("method", "withdraw").Msg("error parsing account number")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"acctNum": "invalid format"}})
		return
	}
	bal, err := h.Svc.Withdraw(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	resp := balanceJSONResp{Balance: *bal}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) Balance(w http.ResponseWriter, r *http.Request) {
	num, err := acctNumParam(r)
	if err != nil {
		h.Log.Err(err).Str("method", "balance").Msg("error parsing account number")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"acctNum": "invalid format"}})
		return
	}
	bal, err := h.Svc.Balance(num)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	resp := balanceJSONResp{Balance: *bal}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) Report(w http.ResponseWriter, r *http.Request) {
	num, err := acctNumParam(r)
	if err != nil {
		h.Log.Err(err).Str("method", "report").Msg("error parsing account number")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"acctNum": "invalid format"}})
		return
	}
	rep, err := h.Svc.Report(num, r.URL.Query().Get("kind"))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	txns := []Transaction{}
	for {
		t, ok := rep.Next()
		if !ok {
			break
		}
		txns = append(txns, t)
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(txns); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) Statement(w http.ResponseWriter, r *http.Request) {
	num, err := acctNumParam(r)
	if err != nil {
		h.Log.Err(err).Str("method", "statement").Msg("error parsing account number")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"acctNum": "invalid format"}})
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	if err = h.Svc.Statement(w, StatementReq{AcctNum: num}); err != nil {
		WriteHTTPError(w, err)
	}
}

func acctNumParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "acctNum"), 10, 64)
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var ne error
	defer func() {
		if ne != nil {
			log.Error().
				Err(ne).
				Msg("error response encoding failed")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	errpnf := &ErrPersonNotFound{}
	erranf := &ErrAccountNotFound{}
	errdup := &ErrAlreadyExists{}
	errbr := &ErrBadRequest{}
	switch {
	case errors.As(err, errpnf):
		w.WriteHeader(http.StatusNotFound)
		ne = json.NewEncoder(w).Encode(errpnf)
	case errors.As(err, erranf):
		w.WriteHeader(http.StatusNotFound)
		ne = json.NewEncoder(w).Encode(erranf)
	case errors.As(err, errdup):
		w.WriteHeader(http.StatusConflict)
		ne = json.NewEncoder(w).Encode(errdup)
	case errors.As(err, errbr):
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(errbr)
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrExceedsWithdrawalLimit),
		errors.Is(err, ErrWithdrawalCountExceeded):
		w.WriteHeader(http.StatusUnprocessableEntity)
		resp := map[string]string{
			"message": err.Error(),
		}
		ne = json.NewEncoder(w).Encode(resp)
	default:
		w.WriteHeader(http.StatusInternalServerError)
		resp := map[string]string{
			"message": "server error",
		}
		ne = json.NewEncoder(w).Encode(resp)
	}
}

func HTTPNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]string{
		"path": r.URL.Path,
	}
	json.NewEncoder(w).Encode(resp)
}
