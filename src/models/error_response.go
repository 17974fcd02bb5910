package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Detail string `json:"detail" example:"Activity not found"` // รายละเอียดของ Error
}
