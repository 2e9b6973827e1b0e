package middleware

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Pad right-pads JSON response bodies with spaces to a multiple of blockSize
// so the response length does not reveal which branch produced it.
// Errors returned further down the chain are rendered here through the
// app's ErrorHandler so that problem bodies are padded too. Register it
// before any middleware that can short-circuit a request.
func Pad(blockSize int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				return herr
			}
		}
		if blockSize <= 1 {
			return nil
		}
		contentType := string(c.Response().Header.ContentType())
		if !strings.Contains(contentType, "json") {
			return nil
		}
		if rem := len(c.Response().Body()) % blockSize; rem != 0 {
			c.Response().AppendBody(bytes.Repeat([]byte{' '}, blockSize-rem))
		}
		return nil
	}
}
