package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/raiyan37/finance-tracker/internal/handlers"
)

func TestUpdateTransactionRejectsIncompleteData(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]string{
		"пустое название": `{"name": "", "amount": -20, "date": "2025-03-10T00:00:00Z", "category": "Groceries"}`,
		"нулевая сумма":   `{"name": "Market", "amount": 0, "date": "2025-03-10T00:00:00Z", "category": "Groceries"}`,
		"без даты":        `{"name": "Market", "amount": -20, "category": "Groceries"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "id", Value: "1"}}
			c.Request = httptest.NewRequest(http.MethodPut, "/api/transactions/1", strings.NewReader(body))
			c.Request.Header.Set("Content-Type", "application/json")

			handlers.UpdateTransactionHandler(nil)(c)

			if w.Code != http.StatusBadRequest {
				t.Errorf("код ответа: получили %d, хотели %d", w.Code, http.StatusBadRequest)
			}
			var resp struct {
				Success bool   `json:"success"`
				Code    string `json:"code"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("ошибка разбора ответа: %v", err)
			}
			if resp.Success || resp.Code != "INVALID_INPUT" {
				t.Errorf("тело ответа: %s", w.Body.String())
			}
		})
	}
}
