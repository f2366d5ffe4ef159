package bridgeclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	bridgedomain "github.com/gmendes/agency-ops-api/infrastructure/integrator/adplatform/domain"
	"github.com/gmendes/agency-ops-api/internal/config"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Timeout por chamada: uma conta lenta falha sozinha sem travar o lote inteiro
const requestTimeout = 20 * time.Second

type Client interface {
	GetAccountSnapshot(externalID string, platform string, date time.Time) (*bridgedomain.AccountSnapshot, error)
}

type BridgeClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &BridgeClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// GetAccountSnapshot busca os números normalizados de gasto e campanha de uma
// conta na data informada
func (c *BridgeClient) GetAccountSnapshot(externalID string, platform string, date time.Time) (*bridgedomain.AccountSnapshot, error) {
	params := url.Values{}
	params.Add("platform", platform)
	params.Add("date", date.Format(time.DateOnly))

	requestURL := fmt.Sprintf(
		"%s/accounts/%s/snapshot?%s",
		c.Cfg.MetricsBridge.URL,
		url.PathEscape(externalID),
		params.Encode(),
	)

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Cfg.MetricsBridge.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		// Sem dados para a conta/data; o chamador decide como degradar
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		var errResp bridgedomain.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("metrics bridge retornou erro: %s (status %d)", errResp.Error.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("metrics bridge retornou status inesperado: %d", resp.StatusCode)
	}

	snapshot := &bridgedomain.AccountSnapshot{}
	if err := json.Unmarshal(body, snapshot); err != nil {
		return nil, fmt.Errorf("erro ao decodificar snapshot: %w", err)
	}

	return snapshot, nil
}
