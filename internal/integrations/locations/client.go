package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VideoLinkService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент справочника локаций тюрем
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника локаций
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetVideoLinkRooms получает комнаты тюрьмы, оборудованные для видеосвязи
// При enabledOnly=true неактивные комнаты отбрасываются
func (c *Client) GetVideoLinkRooms(ctx context.Context, prisonCode string, enabledOnly bool) ([]domain.Room, error) {
	endpoint := fmt.Sprintf("%s/locations/prison/%s/non-residential-usage-type/VIDEO_LINK",
		c.baseURL, url.PathEscape(prisonCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrPrisonNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var locations []Location
	if err := json.NewDecoder(resp.Body).Decode(&locations); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	rooms := make([]domain.Room, 0, len(locations))
	for _, l := range locations {
		if enabledOnly && !l.Active {
			continue
		}

		id, err := uuid.Parse(l.ID)
		if err != nil {
			c.log.Warn("Skipping location key=%s with invalid id=%q: %v", l.Key, l.ID, err)
			continue
		}

		rooms = append(rooms, domain.Room{
			ID:          id,
			Key:         l.Key,
			PrisonCode:  prisonCode,
			Description: l.LocalName,
			Enabled:     l.Active,
		})
	}

	c.log.Info("Fetched %d video link rooms for prison=%s (enabledOnly=%t)", len(rooms), prisonCode, enabledOnly)
	return rooms, nil
}
