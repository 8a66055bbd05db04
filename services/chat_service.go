package services

import (
	"math/rand"
	"strings"
	"time"
)

// ChatService is the storefront help widget: a keyword matcher over canned
// answers, plus a random follow-up question. First matching keyword wins.
type ChatService struct {
	responses [][2]string // ordered keyword -> answer pairs
	followUps []string
	fallback  string
}

func NewChatService() *ChatService {
	return &ChatService{
		responses: [][2]string{
			{"product", "You can find detailed product information on the category pages. Which product are you interested in?"},
			{"order status", "Could you share your order number so we can look up its status?"},
			{"return", "For returns, please contact customer support. Our return policy is available on the website."},
			{"price", "Prices are listed on each product page. Subscribe to our newsletter to hear about special discounts."},
			{"shipping", "Could you share your order number? You can track your shipment once it is on the way."},
			{"payment", "We accept credit cards, debit cards and bank transfer. All payments run through a secure gateway."},
			{"discount", "Follow our newsletter and social media accounts to catch current discounts."},
			{"contact", "You can reach us by phone at 0212 XXX XX XX or by email at info@example.com."},
		},
		followUps: []string{
			"Is there anything else I can help you with?",
			"Do you have another question?",
			"Anything else you would like to know?",
		},
		fallback: "Thanks for reaching out! We'll do our best to help. For more detail, please contact customer support.",
	}
}

type ChatReply struct {
	Response  string    `json:"response"`
	FollowUp  string    `json:"followUp"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *ChatService) Reply(message string) ChatReply {
	return ChatReply{
		Response:  s.match(message),
		FollowUp:  s.followUps[rand.Intn(len(s.followUps))],
		Timestamp: time.Now().UTC(),
	}
}

func (s *ChatService) match(message string) string {
	lower := strings.ToLower(message)
	for _, kv := range s.responses {
		if strings.Contains(lower, kv[0]) {
			return kv[1]
		}
	}
	return s.fallback
}
