package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Region  string `json:"region"`
	ZIP     string `json:"zip"`
	Country string `json:"country"`
}

type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type Checkout struct {
	CustomerID string     `json:"customer_id"`
	Items      []LineItem `json:"items"`
	Tax        int64      `json:"tax"`
	Shipping   int64      `json:"shipping"`
	Total      int64      `json:"total"`
	Address    Address    `json:"shipping_address"`
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateCheckout() Checkout {
	items := make([]LineItem, 1+rand.Intn(3))
	var subtotal int64
	for i := range items {
		items[i] = LineItem{
			ProductID: "prod_" + randomString(8),
			Name:      "Item " + randomString(5),
			UnitPrice: int64(rand.Intn(5000) + 100),
			Quantity:  1 + rand.Intn(3),
		}
		subtotal += items[i].UnitPrice * int64(items[i].Quantity)
	}

	tax := subtotal / 10
	shipping := int64(rand.Intn(1500))

	return Checkout{
		CustomerID: "customer_" + randomString(5),
		Items:      items,
		Tax:        tax,
		Shipping:   shipping,
		Total:      subtotal + tax + shipping,
		Address: Address{
			Name:    "John Doe",
			Phone:   fmt.Sprintf("+%d", rand.Intn(9999999999)),
			Street:  fmt.Sprintf("Street %d", rand.Intn(100)),
			City:    "City" + randomString(4),
			Region:  "Region" + randomString(3),
			ZIP:     fmt.Sprintf("%06d", rand.Intn(999999)),
			Country: "US",
		},
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "checkouts",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			checkout := generateCheckout()
			data, _ := json.Marshal(checkout)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("checkout generated", checkout.CustomerID)
		case <-ctx.Done():
			return
		}
	}
}
