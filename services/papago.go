package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const papagoEndpoint = "https://openapi.naver.com/v1/papago/n2mt"

var papagoHTTPClient = &http.Client{Timeout: 15 * time.Second}

// PapagoConfigured kiểm tra đã có credential Naver trong env chưa.
func PapagoConfigured() bool {
	return os.Getenv("PAPAGO_CLIENT_ID") != "" && os.Getenv("PAPAGO_CLIENT_SECRET") != ""
}

// TranslateWithPapago gọi Papago NMT và trả về bản dịch.
func TranslateWithPapago(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	form := url.Values{}
	form.Set("source", sourceLang)
	form.Set("target", targetLang)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, papagoEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create Papago request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("X-Naver-Client-Id", os.Getenv("PAPAGO_CLIENT_ID"))
	req.Header.Set("X-Naver-Client-Secret", os.Getenv("PAPAGO_CLIENT_SECRET"))

	resp, err := papagoHTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("papago request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read Papago response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("papago API error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Message struct {
			Result struct {
				TranslatedText string `json:"translatedText"`
			} `json:"result"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse Papago response: %v", err)
	}
	if parsed.Message.Result.TranslatedText == "" {
		return "", fmt.Errorf("papago returned empty translation")
	}
	return parsed.Message.Result.TranslatedText, nil
}
