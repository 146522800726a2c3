// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	feeModel "kodingku_backend/internals/features/finance/fees/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Order ID cicilan
   Format: KDGFEE-<seq>-<unix>-<fee_record_id>
   (uuid ditaruh paling belakang karena mengandung '-')
========================================================= */

const orderIDPrefix = "KDGFEE"

func BuildInstallmentOrderID(feeRecordID uuid.UUID, seq int, now time.Time) string {
	return fmt.Sprintf("%s-%d-%d-%s", orderIDPrefix, seq, now.Unix(), feeRecordID)
}

func ParseInstallmentOrderID(orderID string) (uuid.UUID, int, error) {
	parts := strings.SplitN(orderID, "-", 4)
	if len(parts) != 4 || parts[0] != orderIDPrefix {
		return uuid.Nil, 0, errors.New("order_id bukan format cicilan Kodingku")
	}
	seq, err := strconv.Atoi(parts[1])
	if err != nil || seq < 1 {
		return uuid.Nil, 0, errors.New("seq pada order_id tidak valid")
	}
	feeID, err := uuid.Parse(parts[3])
	if err != nil {
		return uuid.Nil, 0, errors.New("fee_record_id pada order_id tidak valid")
	}
	return feeID, seq, nil
}

/* =========================================================
   Input helper untuk data customer
========================================================= */

type CustomerInput struct {
	Name  string
	Email string
}

/* =========================================================
   Generate Snap Token cicilan
========================================================= */

func GenerateInstallmentSnapToken(orderID string, installment *feeModel.InstallmentPayload, itemName string, cust CustomerInput) (string, string, error) {
	if installment == nil {
		return "", "", errors.New("installment kosong")
	}
	gross := int64(math.Round(installment.Amount))
	if gross <= 0 {
		return "", "", errors.New("nominal cicilan tidak valid")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       fmt.Sprintf("installment-%d", installment.Seq),
				Price:    gross,
				Qty:      1,
				Name:     truncate(itemName, 50),
				Category: "FEE",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
