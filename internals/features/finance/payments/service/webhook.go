// file: internals/features/finance/payments/service/webhook.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	feeService "kodingku_backend/internals/features/finance/fees/service"
)

// HandleInstallmentStatusWebhook dipanggil saat menerima notifikasi dari Midtrans.
// Status sukses menandai cicilan lunas; status gagal melepas order id supaya
// checkout baru bisa diterbitkan. Status lain dicatat saja.
func HandleInstallmentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	feeID, seq, err := ParseInstallmentOrderID(orderID)
	if err != nil {
		log.Println("[ERROR] Order ID tidak dikenali:", err)
		return err
	}

	fees := feeService.NewFeeService(db)
	rec, err := fees.FindByID(feeID)
	if err != nil {
		log.Println("[ERROR] Fee record tidak ditemukan:", err)
		return fmt.Errorf("fee record %s not found", feeID)
	}

	switch status {
	case "capture", "settlement":
		var method *string
		if pt, ok := body["payment_type"].(string); ok && pt != "" {
			method = &pt
		}
		if err := fees.MarkInstallmentPaid(rec, seq, method, time.Now()); err != nil {
			log.Println("[ERROR] Gagal menandai cicilan lunas:", err)
			return err
		}
	case "expire", "cancel", "deny":
		if err := fees.ClearOrderID(rec, seq); err != nil {
			log.Println("[ERROR] Gagal melepas order id cicilan:", err)
			return err
		}
	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	return nil
}
