package mediastore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
)

// DeleteRequest body POST /delete-music pada sidecar.
type DeleteRequest struct {
	PublicID     string `json:"public_id"`
	ResourceType string `json:"resource_type,omitempty"`
}

// SidecarClient klien ke sidecar penghapus media. Kegagalan sidecar tidak
// boleh membatalkan penghapusan metadata; pemanggil menurunkannya jadi
// notifikasi sukses-sebagian.
type SidecarClient struct {
	baseURL string
	http    *httpclient.Client
}

// NewSidecarClient membuat klien sidecar dengan retry ringan.
func NewSidecarClient(baseURL string) *SidecarClient {
	backoff := heimdall.NewConstantBackoff(300*time.Millisecond, 50*time.Millisecond)
	return &SidecarClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: httpclient.NewClient(
			httpclient.WithHTTPTimeout(5*time.Second),
			httpclient.WithRetryCount(1),
			httpclient.WithRetrier(heimdall.NewRetrier(backoff)),
		),
	}
}

// DeleteAsset meminta sidecar menghapus satu aset di penyedia media.
func (c *SidecarClient) DeleteAsset(publicID, resourceType string) error {
	if publicID == "" {
		return fmt.Errorf("public_id kosong")
	}

	payload, err := json.Marshal(DeleteRequest{PublicID: publicID, ResourceType: resourceType})
	if err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	resp, err := c.http.Post(c.baseURL+"/delete-music", bytes.NewReader(payload), headers)
	if err != nil {
		return fmt.Errorf("memanggil sidecar media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sidecar media status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
