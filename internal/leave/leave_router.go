package leave

import (
	"fmt"

	"go-leave/internal/domain"
	"go-leave/internal/shared/apperror"

	"github.com/google/uuid"
)

// DetermineInitialStage picks the first approval tier for a new request. HR
// and ADMIN workflows both start at PENDING_HR; a LINE_MANAGER workflow falls
// back to PENDING_HR when the employee has no line manager.
func DetermineInitialStage(department string, lineManagerID domain.Optional[uuid.UUID], workflows domain.Workflows) (domain.LeaveStatus, error) {
	switch role := workflows.ApproverFor(department); role {
	case domain.ApproverHR, domain.ApproverAdmin:
		return domain.StatusPendingHR, nil
	case domain.ApproverLineManager:
		if !lineManagerID.IsSome() {
			return domain.StatusPendingHR, nil
		}
		return domain.StatusPendingManager, nil
	default:
		return "", apperror.ErrInternal.WithErr(fmt.Errorf("department %q has unknown approver role %q", department, role))
	}
}
