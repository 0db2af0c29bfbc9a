package flashmessages

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"undangan.link/configs/configssession"
)

// Kunci flash message di session.
const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// FlashData pesan sekali-baca untuk render berikutnya.
type FlashData struct {
	Success string
	Error   string
}

// SetFlashMessage menyimpan satu pesan flash di session.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := configssession.GetStore().Get(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages mengambil lalu menghapus pesan flash (sekali baca).
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	var data FlashData
	sess, err := configssession.GetStore().Get(c)
	if err != nil {
		return data, err
	}
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = v
		sess.Delete(FlashErrorKey)
	}
	return data, sess.Save()
}

// SetFlashFormData menyimpan isian form yang gagal agar bisa ditampilkan lagi.
func SetFlashFormData(c *fiber.Ctx, form interface{}) error {
	sess, err := configssession.GetStore().Get(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(form)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(raw))
	return sess.Save()
}

// GetFlashFormData mengambil lalu menghapus isian form tersimpan.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	sess, err := configssession.GetStore().Get(c)
	if err != nil {
		return nil
	}
	raw, ok := sess.Get(flashFormDataKey).(string)
	if !ok || raw == "" {
		return nil
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()

	var form map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		return nil
	}
	return form
}
