package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/presale/internal/common"
)

// codeUserRejected is the EIP-1193 "User Rejected Request" error code.
const codeUserRejected = 4001

// RPCProvider requests accounts from a wallet exposing the Ethereum JSON-RPC
// API over HTTP.
type RPCProvider struct {
	url  string
	http *http.Client
}

func NewRPCProvider(url string, timeout time.Duration) *RPCProvider {
	return &RPCProvider{url: url, http: &http.Client{Timeout: timeout}}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result []string  `json:"result"`
	Error  *rpcError `json:"error"`
}

// RequestAccess calls eth_requestAccounts.
func (p *RPCProvider) RequestAccess(ctx context.Context) ([]string, error) {
	if p.url == "" {
		return nil, fmt.Errorf("%w: no wallet endpoint configured", common.ErrProviderUnavailable)
	}

	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: "eth_requestAccounts", Params: []any{}})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrProviderUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: wallet endpoint returned %s", common.ErrProviderUnavailable, resp.Status)
	}

	var out rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: malformed wallet response: %w", common.ErrProviderUnavailable, err)
	}
	if out.Error != nil {
		if out.Error.Code == codeUserRejected {
			return nil, fmt.Errorf("%w: user rejected the request", common.ErrConnectionRejected)
		}
		return nil, fmt.Errorf("%w: %s (code %d)", common.ErrConnectionRejected, out.Error.Message, out.Error.Code)
	}
	return out.Result, nil
}
