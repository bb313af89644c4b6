package model

import "time"

// Department represents a student's department.
type Department string

const (
	DepartmentComputerScience Department = "Computer Science"
	DepartmentEngineering     Department = "Engineering"
	DepartmentBusiness        Department = "Business"
	DepartmentArts            Department = "Arts"
)

// Student represents a registered student. The ID is caller-assigned and
// immutable once created.
type Student struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Department Department `json:"department"`
	CreatedAt  time.Time  `json:"created_at"`
}

// RegisterStudentRequest is the payload for registering a new student.
type RegisterStudentRequest struct {
	ID         string     `json:"id" binding:"required,min=1,max=30"`
	Name       string     `json:"name" binding:"required,min=1,max=100"`
	Department Department `json:"department" binding:"required,oneof='Computer Science' 'Engineering' 'Business' 'Arts'"`
}
