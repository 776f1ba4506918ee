package services

import (
	"errors"
	"fmt"

	"github.com/dangkhoa/translearn-backend/models"
)

// Phân loại lỗi của tầng service. Controller dựa vào đây để chọn HTTP status.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("record not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// PartialFailure: bản dịch đã lưu thành công nhưng bước cập nhật vocabulary
// thất bại. Bản dịch không được rollback (không có transaction giữa 2 bảng);
// caller retry riêng bước aggregation.
type PartialFailure struct {
	Translation models.Translation
	Err         error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("translation saved but vocabulary aggregation failed: %v", e.Err)
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}
