package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"undangan.link/models"
)

func completedOrderFixture() *models.Order {
	link := "https://undangan.link/invitation/yusuf-aisyah"
	processedAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return &models.Order{
		BaseModel:      models.BaseModel{ID: 7},
		TemplateID:     3,
		GroomName:      "Yusuf Rahman",
		GroomNickname:  "Yusuf",
		BrideName:      "Aisyah Putri",
		BrideNickname:  "Aisyah",
		ReceptionVenue: "Gedung Serbaguna",
		Status:         models.OrderStatusCompleted,
		ProcessedAt:    &processedAt,
		InvitationLink: &link,
		InvitationHTML: "<!DOCTYPE html><html lang=\"id\"></html>",
	}
}

func inputFromOrder(order *models.Order) OrderInput {
	return OrderInput{
		TemplateID:    order.TemplateID,
		GroomName:     order.GroomName,
		GroomNickname: order.GroomNickname,
		BrideName:     order.BrideName,
		BrideNickname: order.BrideNickname,

		ReceptionVenue: order.ReceptionVenue,
	}
}

func TestApplyOrderInput(t *testing.T) {
	t.Run("edit venue tidak menyentuh link undangan yang sudah terbit", func(t *testing.T) {
		order := completedOrderFixture()
		linkBefore := *order.InvitationLink
		processedBefore := *order.ProcessedAt

		input := inputFromOrder(order)
		input.ReceptionVenue = "Balai Kartini"
		applyOrderInput(order, input)

		assert.Equal(t, "Balai Kartini", order.ReceptionVenue)
		assert.NotNil(t, order.InvitationLink)
		assert.Equal(t, linkBefore, *order.InvitationLink)
		assert.Equal(t, models.OrderStatusCompleted, order.Status)
		assert.Equal(t, processedBefore, *order.ProcessedAt)
		// HTML digenerate ulang di tahap berikutnya; edit field tidak
		// mengosongkannya.
		assert.NotEmpty(t, order.InvitationHTML)
	})

	t.Run("pesanan belum diproses tetap tanpa link", func(t *testing.T) {
		order := &models.Order{Status: models.OrderStatusPending}
		input := inputFromOrder(completedOrderFixture())
		applyOrderInput(order, input)

		assert.Nil(t, order.InvitationLink)
		assert.Equal(t, models.OrderStatusPending, order.Status)
	})

	t.Run("timezone kosong jatuh ke WIB", func(t *testing.T) {
		order := &models.Order{}
		input := inputFromOrder(completedOrderFixture())
		input.AkadTimezone = ""
		input.ReceptionTimezone = "WITA"
		applyOrderInput(order, input)

		assert.Equal(t, "WIB", order.AkadTimezone)
		assert.Equal(t, "WITA", order.ReceptionTimezone)
	})

	t.Run("payload kado bukan JSON valid dibuang", func(t *testing.T) {
		order := &models.Order{}
		input := inputFromOrder(completedOrderFixture())
		input.WeddingGiftsJSON = "{bukan json"
		applyOrderInput(order, input)

		assert.Nil(t, order.WeddingGifts)
	})
}
