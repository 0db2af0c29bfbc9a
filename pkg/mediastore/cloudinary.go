// Package mediastore membungkus API Cloudinary yang dipakai produk: destroy
// aset bertanda tangan (dipanggil sidecar) dan klien HTTP ke sidecar itu
// sendiri. Upload tidak lewat server; browser mengunggah langsung dengan
// unsigned preset.
package mediastore

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
)

// Resource type yang dicoba berurutan saat pemanggil meminta "auto";
// file musik tersimpan sebagai video di Cloudinary, thumbnail sebagai image.
var autoResourceTypes = []string{"video", "image", "raw"}

// CloudinaryClient klien destroy aset Cloudinary dengan tanda tangan API.
type CloudinaryClient struct {
	cloudName string
	apiKey    string
	apiSecret string
	baseURL   string
	http      *httpclient.Client
	now       func() time.Time
}

// NewCloudinaryClient membangun klien dengan retry dan timeout singkat;
// penghapusan aset tidak boleh menggantung permintaan pemanggil.
func NewCloudinaryClient(cloudName, apiKey, apiSecret string) *CloudinaryClient {
	backoff := heimdall.NewConstantBackoff(500*time.Millisecond, 100*time.Millisecond)
	return &CloudinaryClient{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   "https://api.cloudinary.com/v1_1",
		http: httpclient.NewClient(
			httpclient.WithHTTPTimeout(10*time.Second),
			httpclient.WithRetryCount(2),
			httpclient.WithRetrier(heimdall.NewRetrier(backoff)),
		),
		now: time.Now,
	}
}

// DestroyResult hasil destroy dari Cloudinary ("ok", "not found", dst).
type DestroyResult struct {
	Result string `json:"result"`
}

// Destroy menghapus satu aset berdasarkan public_id. resourceType "auto"
// (atau kosong) mencoba video, image, lalu raw sampai ada yang "ok";
// Cloudinary menjawab "not found" tanpa error untuk tipe yang salah.
func (c *CloudinaryClient) Destroy(publicID, resourceType string) (*DestroyResult, error) {
	if publicID == "" {
		return nil, fmt.Errorf("public_id kosong")
	}

	types := []string{resourceType}
	if resourceType == "" || resourceType == "auto" {
		types = autoResourceTypes
	}

	var last *DestroyResult
	for _, rt := range types {
		res, err := c.destroyOne(publicID, rt)
		if err != nil {
			return nil, err
		}
		last = res
		if res.Result == "ok" {
			return res, nil
		}
	}
	return last, nil
}

func (c *CloudinaryClient) destroyOne(publicID, resourceType string) (*DestroyResult, error) {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)

	// Tanda tangan Cloudinary: sha1 atas parameter terurut + api_secret.
	toSign := "public_id=" + publicID + "&timestamp=" + timestamp + c.apiSecret
	sum := sha1.Sum([]byte(toSign))
	signature := hex.EncodeToString(sum[:])

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.apiKey)
	form.Set("signature", signature)

	endpoint := fmt.Sprintf("%s/%s/%s/destroy", c.baseURL, c.cloudName, resourceType)
	headers := http.Header{}
	headers.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Post(endpoint, strings.NewReader(form.Encode()), headers)
	if err != nil {
		return nil, fmt.Errorf("memanggil cloudinary destroy: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cloudinary destroy status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result DestroyResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("membaca respons cloudinary: %w", err)
	}
	return &result, nil
}

// Contoh: https://res.cloudinary.com/xxx/video/upload/v1234567890/folder/file.mp3
// public_id: folder/file
var publicIDRe = regexp.MustCompile(`/upload/(?:v\d+/)?(.+?)\.[a-zA-Z0-9]+$`)

// PublicIDFromURL mengekstrak public_id dari URL aset Cloudinary.
// Kosong bila URL tidak berpola upload Cloudinary.
func PublicIDFromURL(assetURL string) string {
	m := publicIDRe.FindStringSubmatch(assetURL)
	if m == nil {
		return ""
	}
	return m[1]
}
