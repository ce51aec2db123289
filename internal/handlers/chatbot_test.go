package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatbotRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chatbot", Chatbot())
	return r
}

func TestGenerateFinancialResponse(t *testing.T) {
	cases := []struct {
		name    string
		message string
		topic   string
	}{
		{"бюджет по-русски", "Как составить бюджет на месяц?", "50/30/20"},
		{"budget по-английски", "help me with my BUDGET please", "50/30/20"},
		{"сбережения", "Хочу накопить на отпуск", "подушку безопасности"},
		{"расходы", "Слишком большие траты в этом месяце", "подписки"},
		{"инвестиции", "С чего начать инвестировать?", "индексные фонды"},
		{"долги", "Как быстрее погасить кредит?", "метод лавины"},
		{"регистр не важен", "ИНВЕСТИЦИИ", "индексные фонды"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answer := generateFinancialResponse(tc.message)
			assert.Contains(t, answer, tc.topic)
		})
	}

	t.Run("неизвестная тема", func(t *testing.T) {
		assert.Equal(t, chatbotDefaultAnswer, generateFinancialResponse("какая сегодня погода"))
	})
}

func TestChatbotHandler(t *testing.T) {
	r := chatbotRouter()

	t.Run("пустое сообщение", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{"message":"   "}`))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("слишком длинное сообщение", func(t *testing.T) {
		long := strings.Repeat("а", chatbotMaxMessageLen+1)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{"message":"`+long+`"}`))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("валидный вопрос", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{"message":"посоветуй про бюджет"}`))
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success   bool   `json:"success"`
			Response  string `json:"response"`
			Timestamp string `json:"timestamp"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Contains(t, body.Response, "50/30/20")
		assert.NotEmpty(t, body.Timestamp)
	})
}
