package submission

import "context"

type SubmissionService interface {
	CreatePermission(ctx context.Context, req CreatePermissionRequest) (SubmissionResponse, error)
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (SubmissionResponse, error)
	CreateMutation(ctx context.Context, req CreateMutationRequest) (SubmissionResponse, error)
	CreateChangeShift(ctx context.Context, req CreateChangeShiftRequest) (SubmissionResponse, error)

	Decide(ctx context.Context, req DecideRequest) (SubmissionResponse, error)
	History(ctx context.Context, filter HistoryFilter) ([]SubmissionResponse, error)
	Delete(ctx context.Context, submissionID string) error
}
