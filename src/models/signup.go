package models

// SignupRequest body ของ POST /activities/{activityName}/signup
type SignupRequest struct {
	Email string `json:"email" validate:"omitempty,email" example:"new@mergington.edu"`
}

// MessageResponse ใช้ตอบกลับเมื่อสมัคร/ยกเลิกสำเร็จ
type MessageResponse struct {
	Message string `json:"message" example:"Signed up new@mergington.edu for Chess Club"`
}
