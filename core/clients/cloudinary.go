package clients

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/logger"
)

// publicIDPattern captures the segment between the last slash and the
// file extension of an asset URL.
var publicIDPattern = regexp.MustCompile(`/([^/.]+)(?:\.[^/]+)?$`)

// Cloudinary deletes assets from a Cloudinary account. Uploads happen
// client side; the server only destroys orphaned images.
type Cloudinary struct {
	cloudName string
	apiKey    string
	apiSecret string
	client    *http.Client
}

// NewCloudinary creates a Cloudinary client for the configured account.
func NewCloudinary(cloudName, apiKey, apiSecret string) *Cloudinary {
	return &Cloudinary{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ExtractPublicID pulls the bare public id out of an asset URL. Returns
// an empty string when the URL does not look like an asset path.
func ExtractPublicID(assetURL string) string {
	match := publicIDPattern.FindStringSubmatch(assetURL)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}

// sign builds the SHA-1 request signature over the sorted parameters.
func (c *Cloudinary) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

// Destroy removes an asset by its full public id (folder included).
func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	log := logger.GetAppLogger()

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.apiKey)
	form.Set("signature", c.sign(params))

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/destroy", c.cloudName)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("publicId", publicID).Error("Cannot reach Cloudinary")
		return common.ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithFields(map[string]interface{}{
			"publicId":   publicID,
			"statusCode": resp.StatusCode,
		}).Error("Cloudinary destroy returned an error")
		return common.NewError(common.ErrCodeExternal,
			fmt.Sprintf("Cloudinary returned status %d", resp.StatusCode),
			common.StatusBadGateway, nil)
	}

	var result struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return common.ErrUpstream
	}
	if result.Result != "ok" && result.Result != "not found" {
		log.WithFields(map[string]interface{}{
			"publicId": publicID,
			"result":   result.Result,
		}).Error("Cloudinary destroy did not succeed")
		return common.ErrUpstream
	}

	return nil
}
