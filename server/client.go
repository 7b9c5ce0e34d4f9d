package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const clientRequestID = 1

// Call sends one JSON-RPC request to a running control server and returns its result
func Call(addr, method string) (json.RawMessage, error) {
	addr, err := NormalizeAddress(addr)
	if err != nil {
		return nil, err
	}

	// if address starts with colon, prepend localhost
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}

	reqBody := JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  method,
		ID:      clientRequestID,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post("http://"+addr+"/rpc", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		if strings.Contains(err.Error(), "connection refused") {
			return nil, fmt.Errorf("control server is not running on %s", addr)
		}
		return nil, fmt.Errorf("failed to connect to control server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("control server returned error: %s", resp.Status)
	}

	var rpcResp struct {
		Result json.RawMessage `json:"result"`
		Error  *struct {
			Code    int         `json:"code"`
			Message string      `json:"message"`
			Data    interface{} `json:"data"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("%s: %v", rpcResp.Error.Message, rpcResp.Error.Data)
	}
	return rpcResp.Result, nil
}
