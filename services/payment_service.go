package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// PaymentGateway is the slice of the card-payment provider the checkout flow
// needs: charge once, learn whether it stuck.
type PaymentGateway interface {
	Charge(req *ChargeRequest) (*ChargeResult, error)
}

type CardIn struct {
	HolderName  string `json:"holderName" binding:"required"`
	Number      string `json:"number" binding:"required"`
	ExpireMonth string `json:"expireMonth" binding:"required"`
	ExpireYear  string `json:"expireYear" binding:"required"`
	CVC         string `json:"cvc" binding:"required"`
}

type ChargeItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category1"`
	Price    float64 `json:"price"`
}

type ChargeRequest struct {
	ConversationID string       `json:"conversationId"`
	Price          float64      `json:"price"`
	PaidPrice      float64      `json:"paidPrice"`
	Currency       string       `json:"currency"`
	Installment    int          `json:"installment"`
	Card           CardIn       `json:"paymentCard"`
	BuyerName      string       `json:"buyerName"`
	BuyerPhone     string       `json:"buyerPhone"`
	City           string       `json:"city"`
	ZipCode        string       `json:"zipCode"`
	Address        string       `json:"address"`
	BasketItems    []ChargeItem `json:"basketItems"`
}

type ChargeResult struct {
	Status       string `json:"status"`
	PaymentID    string `json:"paymentId"`
	ErrorMessage string `json:"errorMessage"`
}

func (r *ChargeResult) Succeeded() bool { return r.Status == "success" }

// PaymentClient talks to the sandbox card-payment API over HTTP.
type PaymentClient struct {
	APIKey    string
	SecretKey string
	BaseURL   string
	HTTP      *http.Client
}

func NewPaymentClient(apiKey, secretKey, baseURL string) *PaymentClient {
	return &PaymentClient{
		APIKey:    apiKey,
		SecretKey: secretKey,
		BaseURL:   baseURL,
		HTTP:      &http.Client{Timeout: 20 * time.Second},
	}
}

func (p *PaymentClient) Charge(req *ChargeRequest) (*ChargeResult, error) {
	if req.ConversationID == "" {
		req.ConversationID = uuid.NewString()
	}
	if req.Currency == "" {
		req.Currency = "TRY"
	}
	if req.Installment == 0 {
		req.Installment = 1
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, p.BaseURL+"/payment/auth", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(p.APIKey, p.SecretKey)

	resp, err := p.HTTP.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result ChargeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode payment response: %w", err)
	}
	return &result, nil
}
