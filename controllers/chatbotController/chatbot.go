package chatbotController

import (
	"dlms/config"
	"dlms/middleware"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// Chat forwards the request body to the external chatbot service and relays
// its response as-is.
func Chat(c *fiber.Ctx) error {
	client := resty.New()

	resp, err := client.R().
		SetContext(c.Context()).
		SetHeader("Content-Type", "application/json").
		SetBody(c.Body()).
		Post(config.AppConfig.ChatbotServiceURL + "/api/chat")
	if err != nil {
		log.Printf("Error calling chatbot service: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Chatbot service unavailable!", nil)
	}

	c.Set("Content-Type", "application/json")
	return c.Status(resp.StatusCode()).Send(resp.Body())
}
