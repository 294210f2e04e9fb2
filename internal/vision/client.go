package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/sirupsen/logrus"
)

// SourceAI - ключ охлаждения для инцидентов, найденных классификатором кадров
const SourceAI = "AI Detection"

// Prediction - ответ внешнего инференс-эндпоинта
type Prediction struct {
	Prediction          string  `json:"prediction"`
	AccidentProbability float64 `json:"accident_probability"`
}

// Classifier классифицирует кадр с камеры и возвращает вероятность ДТП
type Classifier interface {
	Predict(ctx context.Context, filename string, image io.Reader) (*Prediction, error)
}

// Client - клиент внешнего AI-классификатора кадров
type Client struct {
	url        string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиента инференс-эндпоинта
func NewClient(url string, logger *logrus.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Predict отправляет кадр классификатору и возвращает вероятность аварии
// по шкале 0-100
func (c *Client) Predict(ctx context.Context, filename string, image io.Reader) (*Prediction, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, image); err != nil {
		return nil, fmt.Errorf("copy image into form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, &body)
	if err != nil {
		return nil, fmt.Errorf("create predict request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send frame to predict endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("predict endpoint returned status %d", resp.StatusCode)
	}

	var p Prediction
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode prediction: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"prediction":  p.Prediction,
		"probability": p.AccidentProbability,
	}).Debug("Frame classified")
	return &p, nil
}
