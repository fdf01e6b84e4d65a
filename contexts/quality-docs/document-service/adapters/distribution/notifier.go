// Package distribution bridges document approval into the distribution
// module without coupling the two domains' entities.
package distribution

import (
	"context"

	distributioncommands "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/application/commands"
	distributionentities "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/domain/entities"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/domain/entities"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/ports"
)

type Notifier struct {
	Commands distributioncommands.UseCase
}

func (n Notifier) NotifyRelevantUsers(ctx context.Context, doc entities.Document) (int, error) {
	trigger := distributionentities.Document{
		ID:             doc.ID,
		TenantID:       doc.TenantID,
		Code:           doc.Code,
		Description:    doc.Description,
		Area:           doc.Area,
		ContractID:     doc.ContractID,
		RevisionNumber: doc.RevisionNumber,
		Status:         distributionentities.DocumentStatus(doc.Status),
	}
	if doc.ApproverID != "" {
		trigger.Approver = &distributionentities.Approver{
			ID:    doc.ApproverID,
			Name:  doc.ApproverName,
			Email: doc.ApproverEmail,
		}
	}
	return n.Commands.NotifyRelevantUsers(ctx, trigger)
}

var _ ports.Distributor = Notifier{}
