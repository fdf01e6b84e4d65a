package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/entities"
	domainerrors "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/errors"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/ports"
)

type documentModel struct {
	ID             string     `gorm:"column:id;primaryKey"`
	TenantID       string     `gorm:"column:tenant_id;index"`
	Code           string     `gorm:"column:code"`
	Title          string     `gorm:"column:title"`
	Description    string     `gorm:"column:description"`
	Area           string     `gorm:"column:area"`
	ContractID     string     `gorm:"column:contract_id"`
	RevisionNumber int        `gorm:"column:revision_number"`
	Status         string     `gorm:"column:status"`
	ApproverID     string     `gorm:"column:approver_id"`
	ApproverName   string     `gorm:"column:approver_name"`
	ApproverEmail  string     `gorm:"column:approver_email"`
	ApprovedAt     *time.Time `gorm:"column:approved_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (documentModel) TableName() string { return "documents" }

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&documentModel{})
}

func (r *Repository) CreateDocument(ctx context.Context, doc entities.Document) error {
	model := toDocumentModel(doc)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.logError("document insert failed", err, doc.TenantID)
		return err
	}
	return nil
}

func (r *Repository) GetDocument(ctx context.Context, tenantID string, documentID string) (entities.Document, error) {
	var model documentModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, documentID).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Document{}, domainerrors.ErrDocumentNotFound
	}
	if err != nil {
		r.logError("document lookup failed", err, tenantID)
		return entities.Document{}, err
	}
	return toDocumentEntity(model), nil
}

func (r *Repository) ListDocuments(ctx context.Context, tenantID string, limit int) ([]entities.Document, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var models []documentModel
	if err := query.Find(&models).Error; err != nil {
		r.logError("document list failed", err, tenantID)
		return nil, err
	}
	docs := make([]entities.Document, 0, len(models))
	for _, model := range models {
		docs = append(docs, toDocumentEntity(model))
	}
	return docs, nil
}

func (r *Repository) UpdateDocument(ctx context.Context, doc entities.Document) error {
	model := toDocumentModel(doc)
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", doc.TenantID, doc.ID).
		Save(&model)
	if result.Error != nil {
		r.logError("document update failed", result.Error, doc.TenantID)
		return result.Error
	}
	return nil
}

func (r *Repository) logError(message string, err error, tenantID string) {
	r.logger.Error(message,
		"event", "postgres_error",
		"module", "quality-docs/document-service",
		"layer", "adapters",
		"tenant_id", tenantID,
		"error", err.Error(),
	)
}

func toDocumentModel(doc entities.Document) documentModel {
	return documentModel{
		ID:             doc.ID,
		TenantID:       doc.TenantID,
		Code:           doc.Code,
		Title:          doc.Title,
		Description:    doc.Description,
		Area:           doc.Area,
		ContractID:     doc.ContractID,
		RevisionNumber: doc.RevisionNumber,
		Status:         string(doc.Status),
		ApproverID:     doc.ApproverID,
		ApproverName:   doc.ApproverName,
		ApproverEmail:  doc.ApproverEmail,
		ApprovedAt:     doc.ApprovedAt,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

func toDocumentEntity(model documentModel) entities.Document {
	return entities.Document{
		ID:             model.ID,
		TenantID:       model.TenantID,
		Code:           model.Code,
		Title:          model.Title,
		Description:    model.Description,
		Area:           model.Area,
		ContractID:     model.ContractID,
		RevisionNumber: model.RevisionNumber,
		Status:         entities.DocumentStatus(model.Status),
		ApproverID:     model.ApproverID,
		ApproverName:   model.ApproverName,
		ApproverEmail:  model.ApproverEmail,
		ApprovedAt:     model.ApprovedAt,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

var _ ports.DocumentRepository = (*Repository)(nil)
