package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"undangan.link/services"
)

// parsePublicOrderForm membaca OrderInput dari kiriman wizard, termasuk
// pilihan musik dan field tambahan berprefiks extra_ milik tema tertentu.
func parsePublicOrderForm(c *fiber.Ctx) (services.OrderInput, error) {
	var input services.OrderInput
	if err := c.BodyParser(&input); err != nil {
		return input, err
	}

	if raw := strings.TrimSpace(c.FormValue("selected_music_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return input, fmt.Errorf("pilihan musik tidak valid")
		}
		if id > 0 {
			musicID := uint(id)
			input.SelectedMusicID = &musicID
		}
	}

	input.WeddingGiftsJSON = strings.TrimSpace(c.FormValue("wedding_gifts"))

	extra := map[string]interface{}{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if strings.HasPrefix(k, "extra_") {
			extra[strings.TrimPrefix(k, "extra_")] = string(value)
		}
	})
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for key, values := range form.Value {
			if strings.HasPrefix(key, "extra_") && len(values) > 0 {
				extra[strings.TrimPrefix(key, "extra_")] = values[0]
			}
		}
	}
	if len(extra) > 0 {
		input.ExtraFields = extra
	}
	return input, nil
}

func orderFormPath(templateID uint) string {
	if templateID == 0 {
		return "/"
	}
	return fmt.Sprintf("/order/%d", templateID)
}
