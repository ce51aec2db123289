package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const chatbotMaxMessageLen = 500

type chatbotRequest struct {
	Message string `json:"message"`
}

// Chatbot — простой помощник по финансовой грамотности: подбирает готовый
// ответ по ключевым словам, никакого состояния диалога.
func Chatbot() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatbotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Некорректный формат данных")
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			fail(c, http.StatusBadRequest, "Введите сообщение")
			return
		}
		if len(req.Message) > chatbotMaxMessageLen {
			fail(c, http.StatusBadRequest, "Сообщение слишком длинное (максимум 500 символов)")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"response":  generateFinancialResponse(req.Message),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

type chatbotTopic struct {
	keywords []string
	answer   string
}

// Темы проверяются по порядку, побеждает первая совпавшая.
var chatbotTopics = []chatbotTopic{
	{
		keywords: []string{"бюджет", "budget"},
		answer: "Бюджет — первый шаг к контролю над финансами. Месяц записывайте все доходы и расходы, " +
			"разбейте их по категориям и попробуйте правило 50/30/20: 50% на необходимое, 30% на желания, 20% на сбережения.",
	},
	{
		keywords: []string{"сбереж", "копит", "накоп", "save", "saving"},
		answer: "Для накоплений: 1) сначала платите себе — настройте автоперевод на накопительный счёт, " +
			"2) поставьте конкретную цель, 3) соберите подушку безопасности на 3–6 месяцев расходов.",
	},
	{
		keywords: []string{"расход", "трат", "expense", "spending"},
		answer: "Чтобы управлять расходами: фиксируйте всё 30 дней, отмените ненужные подписки, " +
			"готовьте дома чаще и выдерживайте паузу в 24 часа перед необязательными покупками.",
	},
	{
		keywords: []string{"инвест", "invest"},
		answer: "Перед инвестициями: 1) подушка безопасности, 2) закройте дорогие кредиты, " +
			"3) начните с долгосрочных инструментов, 4) для диверсификации смотрите на индексные фонды с низкими комиссиями.",
	},
	{
		keywords: []string{"долг", "кредит", "займ", "debt", "loan"},
		answer: "Работа с долгами: 1) выпишите все долги со ставками, 2) гасите либо самый дорогой " +
			"(метод лавины), либо самый маленький (метод снежного кома), 3) не берите новые долги.",
	},
}

const chatbotDefaultAnswer = "Я помогаю с финансовой грамотностью: бюджет, сбережения, основы инвестиций, " +
	"работа с долгами и планирование. Спросите о чём-нибудь конкретном из личных финансов."

func generateFinancialResponse(message string) string {
	lower := strings.ToLower(message)
	for _, topic := range chatbotTopics {
		for _, kw := range topic.keywords {
			if strings.Contains(lower, kw) {
				return topic.answer
			}
		}
	}
	return chatbotDefaultAnswer
}
