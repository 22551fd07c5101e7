package apitest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/internal/validators"
	"github.com/MKhiriev/go-expense-keeper/models"
)

func idParam(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}

func notFound(w http.ResponseWriter) {
	_, _ = utils.WriteError(w, http.StatusNotFound, "Not found.", nil)
}

func writeValidationError(w http.ResponseWriter, err error) {
	fieldErrors := map[string][]string{}
	var fe *validators.FieldError
	if errors.As(err, &fe) {
		fieldErrors[fe.Field] = []string{fe.Err.Error()}
	}
	_, _ = utils.WriteError(w, http.StatusUnprocessableEntity, "The given data was invalid.", fieldErrors)
}

// ── categories ──────────────────────────────────────────────────────────────

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	userID := authFrom(r).userID

	s.mu.Lock()
	out := make([]models.Category, 0)
	for _, c := range s.categories {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	_, _ = utils.WriteJSON(w, map[string]any{"data": out}, http.StatusOK)
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_, _ = utils.WriteError(w, http.StatusBadRequest, "Malformed JSON.", nil)
		return
	}
	if err := s.validator.Validate(r.Context(), req); err != nil {
		writeValidationError(w, err)
		return
	}

	s.mu.Lock()
	s.nextID++
	c := &models.Category{ID: s.nextID, Name: req.Name, Color: req.Color, UserID: authFrom(r).userID}
	s.categories[c.ID] = c
	out := *c
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]any{"data": out, "message": "Category created"}, http.StatusCreated)
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_, _ = utils.WriteError(w, http.StatusBadRequest, "Malformed JSON.", nil)
		return
	}
	if err := s.validator.Validate(r.Context(), req); err != nil {
		writeValidationError(w, err)
		return
	}

	s.mu.Lock()
	c, ok := s.categories[idParam(r)]
	if !ok || c.UserID != authFrom(r).userID {
		s.mu.Unlock()
		notFound(w)
		return
	}
	c.Name = req.Name
	c.Color = req.Color
	out := *c
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]any{"data": out}, http.StatusOK)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	c, ok := s.categories[idParam(r)]
	if ok && c.UserID == authFrom(r).userID {
		delete(s.categories, c.ID)
	}
	s.mu.Unlock()

	if !ok {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── expenses ────────────────────────────────────────────────────────────────

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 15
	}

	userID := authFrom(r).userID
	s.mu.Lock()
	all := make([]models.Expense, 0)
	for _, e := range s.expenses {
		if e.UserID == userID {
			all = append(all, *e)
		}
	}
	s.mu.Unlock()
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	from := min((page-1)*perPage, len(all))
	to := min(from+perPage, len(all))
	lastPage := int(math.Max(1, math.Ceil(float64(len(all))/float64(perPage))))

	_, _ = utils.WriteJSON(w, map[string]any{
		"data": all[from:to],
		"meta": models.Meta{CurrentPage: page, LastPage: lastPage, PerPage: perPage, Total: len(all)},
	}, http.StatusOK)
}

func (s *Server) getExpense(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	e, ok := s.expenses[idParam(r)]
	var out models.Expense
	if ok {
		out = *e
	}
	s.mu.Unlock()

	if !ok || out.UserID != authFrom(r).userID {
		notFound(w)
		return
	}
	_, _ = utils.WriteJSON(w, map[string]any{"data": out}, http.StatusOK)
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_, _ = utils.WriteError(w, http.StatusBadRequest, "Malformed JSON.", nil)
		return
	}
	if err := s.validator.Validate(r.Context(), req); err != nil {
		writeValidationError(w, err)
		return
	}

	s.mu.Lock()
	s.nextID++
	e := &models.Expense{
		ID:               s.nextID,
		Amount:           req.Amount,
		Description:      req.Description,
		CategoryID:       req.CategoryID,
		ReceiptImagePath: req.ReceiptImagePath,
		ExpenseDate:      req.ExpenseDate,
		UserID:           authFrom(r).userID,
	}
	if c, ok := s.categories[req.CategoryID]; ok {
		cc := *c
		e.Category = &cc
	}
	s.expenses[e.ID] = e
	out := *e
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]any{"data": out, "message": "Expense created"}, http.StatusCreated)
}

func (s *Server) updateExpense(w http.ResponseWriter, r *http.Request) {
	var upd models.ExpenseUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		_, _ = utils.WriteError(w, http.StatusBadRequest, "Malformed JSON.", nil)
		return
	}
	if err := s.validator.Validate(r.Context(), upd); err != nil {
		writeValidationError(w, err)
		return
	}

	s.mu.Lock()
	e, ok := s.expenses[idParam(r)]
	if !ok || e.UserID != authFrom(r).userID {
		s.mu.Unlock()
		notFound(w)
		return
	}
	if upd.Amount != nil {
		e.Amount = *upd.Amount
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.CategoryID != nil {
		e.CategoryID = *upd.CategoryID
	}
	if upd.ExpenseDate != nil {
		e.ExpenseDate = *upd.ExpenseDate
	}
	if upd.ReceiptImagePath != nil {
		e.ReceiptImagePath = upd.ReceiptImagePath
	}
	out := *e
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]any{"data": out}, http.StatusOK)
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	e, ok := s.expenses[idParam(r)]
	if ok && e.UserID == authFrom(r).userID {
		delete(s.expenses, e.ID)
	}
	s.mu.Unlock()

	if !ok {
		notFound(w)
		return
	}
	_, _ = utils.WriteJSON(w, map[string]string{"message": "Expense deleted"}, http.StatusOK)
}

func (s *Server) expenseStats(w http.ResponseWriter, r *http.Request) {
	userID := authFrom(r).userID

	s.mu.Lock()
	var total float64
	breakdown := map[string]models.CategoryBreakdown{}
	for _, e := range s.expenses {
		if e.UserID != userID {
			continue
		}
		total += e.Amount
		name := "Uncategorized"
		if c, ok := s.categories[e.CategoryID]; ok {
			name = c.Name
		}
		b := breakdown[name]
		b.Total += e.Amount
		b.Count++
		breakdown[name] = b
	}
	s.mu.Unlock()

	sum := fmt.Sprintf("%.2f", total)
	_, _ = utils.WriteJSON(w, map[string]any{"data": models.ExpenseStats{
		Totals:            models.ExpenseTotals{ThisWeek: sum, ThisMonth: sum, AllTime: sum},
		CategoryBreakdown: breakdown,
	}}, http.StatusOK)
}

// ── receipts ────────────────────────────────────────────────────────────────

func (s *Server) uploadReceipt(w http.ResponseWriter, r *http.Request) {
	f, hdr, err := r.FormFile("receipt_image")
	if err != nil {
		_, _ = utils.WriteError(w, http.StatusUnprocessableEntity, "The given data was invalid.",
			map[string][]string{"receipt_image": {"The receipt image field is required."}})
		return
	}
	defer f.Close()
	size, _ := io.Copy(io.Discard, f)

	path := fmt.Sprintf("receipts/%d/%s", authFrom(r).userID, hdr.Filename)
	s.mu.Lock()
	location := s.URL + "/storage/" + path
	s.receipts[path] = location
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]any{"data": models.ReceiptProcessResult{
		ReceiptImagePath: path,
		ReceiptImageURL:  location,
		ExtractedData: models.ReceiptExtractedData{
			TotalAmount:  float64(size),
			MerchantName: "Fake Market",
			Date:         "2026-01-15",
			Items: []models.ReceiptItem{
				{Name: "Item", Price: float64(size), Quantity: 1, SuggestedCategory: "Groceries"},
			},
		},
		ExpenseDate: "2026-01-15",
	}}, http.StatusOK)
}

func (s *Server) receiptURL(w http.ResponseWriter, r *http.Request) {
	path, err := url.PathUnescape(chi.URLParam(r, "path"))
	if err != nil {
		notFound(w)
		return
	}

	s.mu.Lock()
	location, ok := s.receipts[path]
	s.mu.Unlock()

	if !ok {
		notFound(w)
		return
	}
	_, _ = utils.WriteJSON(w, map[string]string{"url": location}, http.StatusOK)
}
