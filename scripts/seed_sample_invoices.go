package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sales_ledger/config"
	billmodels "sales_ledger/internal/api/billing/models"
)

// Script seed hóa đơn mẫu để dev/test danh bạ khách hàng.
// Chạy: go run scripts/seed_sample_invoices.go
func main() {
	fmt.Println("=== Seed Hóa Đơn Mẫu ===")

	cfg := config.NewConfig()
	if cfg == nil {
		log.Fatal("Không thể đọc cấu hình từ file env")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoDB_ConnectionURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Không thể kết nối với MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Không thể ping MongoDB: %v", err)
	}
	fmt.Println("✓ Đã kết nối với MongoDB")

	db := client.Database(cfg.MongoDB_DBName)
	invoices := db.Collection("invoices")
	counters := db.Collection("counters")

	now := time.Now().UnixMilli()
	samples := []billmodels.Invoice{
		{
			CustomerId:    "CUST-001",
			CustomerName:  "Nguyễn Văn An",
			CustomerPhone: "0901234555",
			CustomerEmail: "an@example.com",
			LineItems: []billmodels.InvoiceLineItem{
				{Description: "Bàn gỗ sồi", Quantity: 1, UnitPrice: 100},
			},
			Status:    billmodels.InvoiceStatusPaid,
			OrderDate: "2024-01-15",
		},
		{
			CustomerId:    "CUST-001",
			CustomerName:  "Nguyễn Văn An",
			CustomerPhone: "0901234555",
			CustomerEmail: "an@example.com",
			LineItems: []billmodels.InvoiceLineItem{
				{Description: "Ghế gỗ", Quantity: 2, UnitPrice: 25},
			},
			Status:    billmodels.InvoiceStatusPending,
			OrderDate: "2024-02-01",
		},
		{
			CustomerId:    "CUST-002",
			CustomerName:  "Trần Thị Bình",
			CustomerPhone: "0907654777",
			LineItems: []billmodels.InvoiceLineItem{
				{Description: "Tủ quần áo", Quantity: 1, UnitPrice: 350},
			},
			Status:    billmodels.InvoiceStatusOverdue,
			OrderDate: "2024-03-10",
		},
	}

	inserted := 0
	for i := range samples {
		// Cấp số hóa đơn từ counter, cùng cơ chế với server
		var counter billmodels.Counter
		err := counters.FindOneAndUpdate(ctx,
			bson.M{"_id": billmodels.CounterInvoiceNumber},
			bson.M{"$inc": bson.M{"seq": 1}},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
		).Decode(&counter)
		if err != nil {
			log.Fatalf("Không cấp được số hóa đơn: %v", err)
		}

		invoice := samples[i]
		invoice.InvoiceNumber = fmt.Sprintf("INV-%06d", counter.Seq)
		for j := range invoice.LineItems {
			invoice.LineItems[j].Total = invoice.LineItems[j].Quantity * invoice.LineItems[j].UnitPrice
		}
		invoice.CreatedAt = now
		invoice.UpdatedAt = now

		if _, err := invoices.InsertOne(ctx, invoice); err != nil {
			log.Fatalf("Không insert được hóa đơn %s: %v", invoice.InvoiceNumber, err)
		}
		fmt.Printf("✓ Đã tạo %s (%s, %s)\n", invoice.InvoiceNumber, invoice.CustomerName, invoice.OrderDate)
		inserted++
	}

	fmt.Printf("\n=== Hoàn tất: %d hóa đơn mẫu ===\n", inserted)
}
