package externalapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tu-usuario/billing-api/internal/application/billing"
	"github.com/tu-usuario/billing-api/internal/application/dto"
	"github.com/tu-usuario/billing-api/internal/domain"
)

var _ billing.ExternalBillingSource = (*Client)(nil)

// Client implementa ExternalBillingSource contra el feed JSON del tercero.
// Usa net/http de la stdlib con timeout acotado para no bloquear
// indefinidamente el import.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient construye el cliente del feed. url es el endpoint fijo del
// tercero; timeout acota la llamada completa (conexión + cuerpo).
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

// FetchBillings hace GET al feed y deserializa el arreglo de registros.
// Fallos de transporte o status no exitoso → ImportError(network);
// payload no parseable → ImportError(deserialize).
func (c *Client) FetchBillings(ctx context.Context) ([]dto.BillingAPIRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &domain.ImportError{Cause: domain.ImportCauseUnexpected, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.ImportError{Cause: domain.ImportCauseNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.ImportError{
			Cause: domain.ImportCauseNetwork,
			Err:   fmt.Errorf("external api returned status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ImportError{Cause: domain.ImportCauseNetwork, Err: err}
	}

	var records []dto.BillingAPIRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &domain.ImportError{Cause: domain.ImportCauseDeserialize, Err: err}
	}
	return records, nil
}
