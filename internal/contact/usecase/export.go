package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"admin-srv/internal/audit"
	"admin-srv/internal/contact"
	"admin-srv/internal/docstore"
	"admin-srv/internal/model"
	"admin-srv/internal/query"
	pkgMinio "admin-srv/pkg/minio"
)

const exportObjectPrefix = "exports/contacts-"

// Export pages through all contacts in list order, uploads them as one CSV
// object and presigns a download link for it.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope) (contact.ExportOutput, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(contact.ExportColumns); err != nil {
		return contact.ExportOutput{}, err
	}

	count, err := uc.writeContacts(ctx, w)
	if err != nil {
		return contact.ExportOutput{}, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		uc.l.Errorf(ctx, "contact.usecase.Export: Failed to write csv: %v", err)
		return contact.ExportOutput{}, fmt.Errorf("%w: %v", contact.ErrExportFailed, err)
	}

	now := uc.now()
	objectName := exportObjectPrefix + now.UTC().Format("20060102-150405") + ".csv"
	bucket := uc.storage.DefaultBucket()

	if _, err := uc.storage.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:  bucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(buf.Bytes()),
		Size:        int64(buf.Len()),
		ContentType: contact.ExportContentType,
		Metadata:    map[string]string{"exported-by": sc.UserID},
	}); err != nil {
		uc.l.Errorf(ctx, "contact.usecase.Export: Failed to upload %s: %v", objectName, err)
		return contact.ExportOutput{}, fmt.Errorf("%w: %v", contact.ErrExportFailed, err)
	}

	presigned, err := uc.storage.GetPresignedDownloadURL(ctx, &pkgMinio.PresignedURLRequest{
		BucketName: bucket,
		ObjectName: objectName,
		Method:     pkgMinio.MethodGET,
		Expiry:     contact.ExportURLExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "contact.usecase.Export: Failed to presign %s: %v", objectName, err)
		if delErr := uc.storage.DeleteFile(ctx, bucket, objectName); delErr != nil {
			uc.l.Warnf(ctx, "contact.usecase.Export: Failed to remove %s: %v", objectName, delErr)
		}
		return contact.ExportOutput{}, fmt.Errorf("%w: %v", contact.ErrExportFailed, err)
	}

	uc.record(ctx, sc, audit.ActionExport, objectName)

	return contact.ExportOutput{
		URL:        presigned.URL,
		ObjectName: objectName,
		Count:      count,
		ExpiresAt:  presigned.ExpiresAt,
	}, nil
}

func (uc *implUseCase) writeContacts(ctx context.Context, w *csv.Writer) (int, error) {
	opts := query.Options{
		Order:      defaultOrder,
		Pagination: query.Pagination{PageSize: contact.ExportPageSize},
	}

	count := 0
	for {
		page, err := uc.queryUC.Page(ctx, model.CollectionContacts, opts)
		if err != nil {
			uc.l.Errorf(ctx, "contact.usecase.writeContacts: Failed to fetch page: %v", err)
			return 0, err
		}
		for _, doc := range page.Data {
			if err := w.Write(exportRow(doc)); err != nil {
				return 0, err
			}
		}
		count += len(page.Data)

		if len(page.Data) < contact.ExportPageSize || page.LastVisible == nil {
			return count, nil
		}
		opts.Pagination.LastVisible = *page.LastVisible
	}
}

func exportRow(doc docstore.Document) []string {
	c := model.NewContactFromDocument(doc)
	return []string{c.ID, c.CreatedAt, c.Name, c.Email, c.Subject, c.Message}
}
