package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/config"
	"github.com/ashuraya1989-cyber/assyrian-church/app/fees"
	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/xuri/excelize/v2"
)

const (
	familiesSheet = "Families"
	paymentsSheet = "Payments"
)

var familyHeaders = []string{
	"Surname", "First adult", "Second adult", "Children",
	"Monthly fee", "Annual fee", "Paid until", "Status", "City", "Mobile",
}

var paymentHeaders = []string{
	"Surname", "Monthly fee", "Annual fee", "Amount paid",
	"Paid until", "Method", "Reference", "Registered",
}

// BuildRegisterWorkbook renders the family register and the full payment
// ledger into a two-sheet workbook. Fee and status columns follow the same
// rules as the payments screen: recorded fees win, estimates only for
// families that never paid.
func BuildRegisterWorkbook(families []*models.Family, today time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", familiesSheet)
	if _, err := f.NewSheet(paymentsSheet); err != nil {
		return nil, err
	}

	for col, h := range familyHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(familiesSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for col, h := range paymentHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(paymentsSheet, cell, h); err != nil {
			return nil, err
		}
	}

	paymentRow := 2
	for i, fam := range families {
		monthly, annual, _ := fees.DisplayFees(fam)

		var paidUntil string
		if p := fees.LatestPayment(fam.Payments); p != nil {
			paidUntil = p.PaidUntil
		}
		status := fees.ResolveStatus(paidUntil, today)

		values := []interface{}{
			fam.Surname, fam.FirstAdultName, fam.SecondAdultName, len(fam.Children),
			monthly, annual, paidUntil, status.Label, fam.City, fam.Mobile,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(familiesSheet, cell, v); err != nil {
				return nil, err
			}
		}

		for _, p := range fam.Payments {
			values := []interface{}{
				fam.Surname, p.MonthlyFee, p.AnnualFee, p.AmountPaid,
				p.PaidUntil, string(p.Method), p.Reference,
				p.CreatedAt.Format("2006-01-02"),
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, paymentRow)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(paymentsSheet, cell, v); err != nil {
					return nil, err
				}
			}
			paymentRow++
		}
	}

	return f, nil
}

// WorkbookBytes serializes a workbook for download or upload.
func WorkbookBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UploadExport pushes a finished export to the configured S3-compatible
// bucket and returns the object name.
func UploadExport(ctx context.Context, cfg config.S3Config, name string, data []byte) (string, error) {
	if !cfg.Enabled {
		return "", fmt.Errorf("no S3 endpoint configured")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return "", fmt.Errorf("connect to S3: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return "", fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("create bucket: %w", err)
		}
	}

	_, err = client.PutObject(ctx, cfg.Bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		})
	if err != nil {
		return "", fmt.Errorf("upload export: %w", err)
	}
	return name, nil
}

// ExportObjectName builds a dated object name for uploaded registers.
func ExportObjectName(now time.Time) string {
	return fmt.Sprintf("register/%s-member-register.xlsx", now.Format("2006-01-02"))
}
