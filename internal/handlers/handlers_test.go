package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/laasya2505/kuber-ai-assignment/internal/chat"
	"github.com/laasya2505/kuber-ai-assignment/internal/models"
	"github.com/laasya2505/kuber-ai-assignment/internal/purchase"
	"github.com/laasya2505/kuber-ai-assignment/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// downGenerator simulates an unavailable text-generation API, which
// makes chat responses deterministic (fallback path).
type downGenerator struct{}

func (downGenerator) Generate(ctx context.Context, message string) (string, error) {
	return "", errors.New("service unavailable")
}

func setupRouterWithDB(t *testing.T) *gin.Engine {
	t.Helper()
	// Use a per-test in-memory database to avoid cross-test interference
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := store.InitDB(dsn)
	require.NoError(t, err)
	store.SetDB(db)
	require.NoError(t, purchase.EnsureActivePrice(db, 6500))

	api := &API{
		Assistant: chat.NewAssistant(chat.NewResponder(downGenerator{}), time.Hour, db),
		Purchases: purchase.NewService(db, 6500),
	}
	r := gin.New()
	RegisterRoutes(r, api)
	return r
}

func httpDo(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatFlowWithNudge(t *testing.T) {
	r := setupRouterWithDB(t)

	// first gold-related message: related, no nudge yet
	w := httpDo(r, "POST", "/api/v1/chat", map[string]interface{}{"message": "What are the benefits of gold investment?"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.IsGoldRelated)
	require.False(t, resp.NudgePurchase)
	require.NotEmpty(t, resp.SessionID)
	require.NotEmpty(t, resp.Response)

	sid := resp.SessionID

	// second related message in the same session triggers the nudge
	w = httpDo(r, "POST", "/api/v1/chat", map[string]interface{}{"message": "Is it safe to invest?", "session_id": sid})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.IsGoldRelated)
	require.True(t, resp.NudgePurchase)
	require.Equal(t, sid, resp.SessionID)
	require.Contains(t, resp.Response, "purchase some digital gold")

	// third related message: never a second nudge
	w = httpDo(r, "POST", "/api/v1/chat", map[string]interface{}{"message": "how do I buy gold?", "session_id": sid})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.NudgePurchase)
}

func TestChatUnrelatedMessage(t *testing.T) {
	r := setupRouterWithDB(t)

	w := httpDo(r, "POST", "/api/v1/chat", map[string]interface{}{"message": "what's the weather today"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.IsGoldRelated)
	require.False(t, resp.NudgePurchase)
	require.Contains(t, resp.Response, "gold investment queries")
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	r := setupRouterWithDB(t)
	w := httpDo(r, "POST", "/api/v1/chat", map[string]interface{}{"message": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPurchaseAndLookup(t *testing.T) {
	r := setupRouterWithDB(t)

	body := map[string]interface{}{
		"user":   map[string]string{"name": "Asha", "email": "asha@example.com", "phone": "9990001111"},
		"amount": 1000,
	}
	w := httpDo(r, "POST", "/api/v2/purchase", body)
	require.Equal(t, http.StatusOK, w.Code)
	var resp purchaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Regexp(t, `^TXN[0-9A-F]{8}$`, resp.TransactionID)
	require.Equal(t, 0.1538, resp.GoldGrams)
	require.Equal(t, 1000.0, resp.TotalAmount)
	require.Contains(t, resp.Message, "successfully purchased")

	// look the transaction back up
	w = httpDo(r, "GET", "/api/v1/transactions/"+resp.TransactionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var txn map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txn))
	require.Equal(t, resp.TransactionID, txn["transaction_id"])
	require.Equal(t, "completed", txn["status"])
	require.Equal(t, 1000.0, txn["amount"])
}

func TestPurchaseValidation(t *testing.T) {
	r := setupRouterWithDB(t)

	// missing amount
	w := httpDo(r, "POST", "/api/v2/purchase", map[string]interface{}{
		"user": map[string]string{"name": "A", "email": "a@example.com", "phone": "1"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// negative amount
	w = httpDo(r, "POST", "/api/v2/purchase", map[string]interface{}{
		"user":   map[string]string{"name": "A", "email": "a@example.com", "phone": "1"},
		"amount": -5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// bad email
	w = httpDo(r, "POST", "/api/v2/purchase", map[string]interface{}{
		"user":   map[string]string{"name": "A", "email": "not-an-email", "phone": "1"},
		"amount": 100,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// nothing written on rejected input
	var count int64
	require.NoError(t, store.GetDB().Model(&models.Transaction{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestGetTransactionNotFound(t *testing.T) {
	r := setupRouterWithDB(t)
	w := httpDo(r, "GET", "/api/v1/transactions/TXNDEADBEEF", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserTransactions(t *testing.T) {
	r := setupRouterWithDB(t)
	db := store.GetDB()

	// empty list for a user with no purchases
	w := httpDo(r, "GET", "/api/v1/users/12345/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var txns []models.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txns))
	require.Empty(t, txns)

	// two purchases for the same email land on one user
	body := map[string]interface{}{
		"user":   map[string]string{"name": "Ravi", "email": "ravi@example.com", "phone": "1"},
		"amount": 500,
	}
	require.Equal(t, http.StatusOK, httpDo(r, "POST", "/api/v2/purchase", body).Code)
	body["amount"] = 1500
	require.Equal(t, http.StatusOK, httpDo(r, "POST", "/api/v2/purchase", body).Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "ravi@example.com").First(&user).Error)

	w = httpDo(r, "GET", fmt.Sprintf("/api/v1/users/%d/transactions", user.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txns))
	require.Len(t, txns, 2)
}
