package repository

import (
	"time"

	"github.com/ptit-dev/qldsv-api/internal/models"
)

// seed loads the demo dataset. The three credential rows documented on the
// login screen (admin/admin123, tuan.da/teacher123, B24DCCC016/student123)
// must stay exactly as they are; tests pin them.
func (d *Dataset) seed() {
	d.accounts = []models.Account{
		{ID: "admin", Username: "admin", Password: "admin123", Name: "Quản trị viên", Role: models.RoleAdmin, Email: "admin@ptit.edu.vn", Phone: "0901000001", Status: models.AccountStatusActive},
		{ID: "1", Username: "tuan.da", Password: "teacher123", Name: "Đặng Anh Tuấn", Role: models.RoleTeacher, Email: "tuan.da@ptit.edu.vn", Phone: "0901000002", Status: models.AccountStatusActive},
		{ID: "2", Username: "a.nv", Password: "teacher123", Name: "Nguyễn Văn A", Role: models.RoleTeacher, Email: "a.nv@ptit.edu.vn", Phone: "0901000003", Status: models.AccountStatusActive},
		{ID: "B24DCCC016", Username: "B24DCCC016", Password: "student123", Name: "Nguyễn Đức Anh", Role: models.RoleStudent, Email: "anh.nd@student.ptit.edu.vn", Phone: "0901000004", Status: models.AccountStatusActive},
		{ID: "B24DCCC148", Username: "B24DCCC148", Password: "student123", Name: "Phạm Quốc Huy", Role: models.RoleStudent, Email: "huy.pq@student.ptit.edu.vn", Phone: "0901000005", Status: models.AccountStatusActive},
	}

	d.departments = []models.Department{
		{Code: "CNTT", Name: "Công nghệ thông tin"},
		{Code: "DTVT", Name: "Điện tử viễn thông"},
		{Code: "QTKD", Name: "Quản trị kinh doanh"},
	}

	d.adminClasses = []models.AdministrativeClass{
		{Code: "D24CQCN01-B", Name: "Công nghệ thông tin 01", Department: "Công nghệ thông tin", Course: "2024-2028", TeacherID: "1", StudentCount: 45, MaxStudents: 50, Status: "active"},
		{Code: "D24CQCN02-B", Name: "Công nghệ thông tin 02", Department: "Công nghệ thông tin", Course: "2024-2028", TeacherID: "2", StudentCount: 42, MaxStudents: 50, Status: "active"},
		{Code: "D24CQDT01-B", Name: "Điện tử viễn thông 01", Department: "Điện tử viễn thông", Course: "2024-2028", TeacherID: "3", StudentCount: 40, MaxStudents: 50, Status: "active"},
	}

	d.subjects = []models.Subject{
		{Code: "IT3020", Name: "Lập trình hướng đối tượng", Credits: 3, Department: "Công nghệ thông tin", Description: "Các nguyên lý lập trình hướng đối tượng với Java", Teachers: []string{"Đặng Anh Tuấn", "Nguyễn Văn A"}},
		{Code: "IT4020", Name: "Cơ sở dữ liệu", Credits: 3, Department: "Công nghệ thông tin", Description: "Mô hình quan hệ, SQL và thiết kế cơ sở dữ liệu", Prerequisites: []string{"IT3020"}, Teachers: []string{"Trần Thị B"}},
		{Code: "IT3030", Name: "Cấu trúc dữ liệu", Credits: 4, Department: "Công nghệ thông tin", Description: "Cấu trúc dữ liệu và giải thuật cơ bản", Teachers: []string{"Đặng Anh Tuấn"}},
	}

	d.creditClasses = []models.CreditClass{
		{
			ID: "1", Code: "IT3020.001", SubjectCode: "IT3020", Name: "Lập trình hướng đối tượng",
			Semester: "HK1 2024-2025", Credits: 3, MaxStudents: 50, CurrentStudents: 45,
			Teachers: []string{"Đặng Anh Tuấn"},
			Schedule: models.ClassSchedule{DayOfWeek: "Thứ 2", StartTime: "07:30", EndTime: "09:15", Room: "201", Building: "TC"},
			Status:   "open",
		},
		{
			ID: "2", Code: "IT4020.002", SubjectCode: "IT4020", Name: "Cơ sở dữ liệu",
			Semester: "HK1 2024-2025", Credits: 3, MaxStudents: 40, CurrentStudents: 35,
			Teachers: []string{"Trần Thị B"},
			Schedule: models.ClassSchedule{DayOfWeek: "Thứ 4", StartTime: "09:25", EndTime: "11:10", Room: "305", Building: "A2"},
			Status:   "open",
		},
	}

	d.enrollments = []models.Enrollment{
		{ID: "1", StudentID: "B24DCCC016", StudentName: "Nguyễn Đức Anh", CreditClassID: "1", CreditClassName: "IT3020.001 - Lập trình hướng đối tượng", EnrollDate: "2024-08-15", Status: models.EnrollmentStatusActive},
		{ID: "2", StudentID: "B24DCCC148", StudentName: "Phạm Quốc Huy", CreditClassID: "2", CreditClassName: "IT4020.002 - Cơ sở dữ liệu", EnrollDate: "2024-08-16", Status: models.EnrollmentStatusActive},
	}

	d.grades = []models.Grade{
		{StudentID: "B24DCCC016", SubjectCode: "IT4020", Semester: "HK1 2024-2025", Credits: 3, Attendance: floatPtr(9), Midterm: floatPtr(8), Final: floatPtr(8.7), Total: floatPtr(8.5)},
		{StudentID: "B24DCCC016", SubjectCode: "IT3020", Semester: "HK1 2024-2025", Credits: 3, Attendance: floatPtr(9), Midterm: floatPtr(7.5), Final: floatPtr(8.1), Total: floatPtr(8.0)},
		{StudentID: "B24DCCC016", SubjectCode: "IT3030", Semester: "HK1 2024-2025", Credits: 4, Attendance: floatPtr(8), Midterm: floatPtr(7), Final: floatPtr(7.7), Total: floatPtr(7.5)},
		{StudentID: "B24DCCC148", SubjectCode: "IT4020", Semester: "HK1 2024-2025", Credits: 3, Attendance: floatPtr(8), Midterm: floatPtr(6.5)},
	}

	d.notifications = []models.Notification{
		{ID: "1", Title: "Thông báo điểm giữa kỳ", Content: "Điểm giữa kỳ môn Cơ sở dữ liệu đã được cập nhật", Recipient: "B24DCCC016", CreatedAt: time.Date(2024, 12, 20, 8, 0, 0, 0, time.UTC), Read: false},
		{ID: "2", Title: "Lịch thi cuối kỳ", Content: "Lịch thi cuối kỳ học kỳ 1 năm học 2024-2025 đã được công bố", Recipient: "B24DCCC016", CreatedAt: time.Date(2024, 12, 18, 8, 0, 0, 0, time.UTC), Read: true},
	}
}
