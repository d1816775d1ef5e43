// Package models - model bộ đếm (Counter) cho việc cấp phát số hóa đơn.
package models

// CounterInvoiceNumber là _id của bộ đếm cấp số hóa đơn trong collection counters.
const CounterInvoiceNumber = "invoiceNumber"

// Counter một bộ đếm tuần tự, _id là tên bộ đếm.
// Seq tăng nguyên tử bằng FindOneAndUpdate $inc (upsert) nên không bao giờ cấp trùng số.
type Counter struct {
	ID  string `json:"id" bson:"_id"`
	Seq int64  `json:"seq" bson:"seq"`
}
