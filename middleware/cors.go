package middleware

import "github.com/gofiber/fiber/v2"

// CORS allows browser calls from any origin. Pre-flight OPTIONS requests are
// answered directly with an empty 200 carrying the same permissive headers.
func CORS(c *fiber.Ctx) error {
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
	c.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

	if c.Method() == fiber.MethodOptions {
		// SendStatus would write the status text into the body; the
		// preflight reply must be a 200 with no body at all.
		return c.Status(fiber.StatusOK).Send(nil)
	}
	return c.Next()
}
