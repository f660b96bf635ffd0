package repository

// DefaultScheduleFixtures is the built-in seed used when no fixture file is
// configured.
func DefaultScheduleFixtures() ScheduleFixtureSet {
	return ScheduleFixtureSet{
		General: []ScheduleFixture{
			{ID: "sch-001", Date: "2024-03-04", StartTime: "07:30", EndTime: "09:00", Subject: "Mathematics", Topic: "Quadratic equations", Faculty: "Dr. Anita Rao", ClassName: "XI IPA 1", Batch: "2024-A", Room: "R-101", Mode: "offline", Status: "completed"},
			{ID: "sch-002", Date: "2024-03-04", StartTime: "09:15", EndTime: "10:45", Subject: "Physics", Topic: "Kinematics", Faculty: "Mr. Budi Santoso", ClassName: "XI IPA 2", Batch: "2024-B", Room: "R-102", Mode: "offline", Status: "completed"},
			{ID: "sch-003", Date: "2024-03-05", StartTime: "11:00", EndTime: "12:30", Subject: "Chemistry", Topic: "Stoichiometry", Faculty: "Ms. Clara Wijaya", ClassName: "XII IPA 1", Batch: "2024-A", Room: "Lab-1", Mode: "offline", Status: "completed"},
			{ID: "sch-004", Date: "2024-03-05", StartTime: "13:00", EndTime: "14:30", Subject: "Biology", Topic: "Cell structure", Faculty: "Dr. Dewi Lestari", ClassName: "XI IPA 1", Batch: "2024-B", Room: "Lab-2", Mode: "offline", Status: "completed"},
			{ID: "sch-005", Date: "2024-03-06", StartTime: "07:30", EndTime: "09:00", Subject: "English", Topic: "Essay structure", Faculty: "Mr. Evan Hart", ClassName: "XI IPA 2", Batch: "2024-A", Room: "R-101", Mode: "online", Status: "completed"},
			{ID: "sch-006", Date: "2024-03-06", StartTime: "09:15", EndTime: "10:45", Subject: "Mathematics", Topic: "Trigonometric identities", Faculty: "Dr. Anita Rao", ClassName: "XII IPA 1", Batch: "2024-B", Room: "R-102", Mode: "offline", Status: "completed"},
			{ID: "sch-007", Date: "2024-03-07", StartTime: "11:00", EndTime: "12:30", Subject: "Physics", Topic: "Newton's laws", Faculty: "Mr. Budi Santoso", ClassName: "XI IPA 1", Batch: "2024-A", Room: "Lab-1", Mode: "offline", Status: "completed"},
			{ID: "sch-008", Date: "2024-03-07", StartTime: "13:00", EndTime: "14:30", Subject: "Chemistry", Topic: "Chemical bonding", Faculty: "Ms. Clara Wijaya", ClassName: "XI IPA 2", Batch: "2024-B", Room: "Lab-2", Mode: "offline", Status: "cancelled"},
			{ID: "sch-009", Date: "2024-03-08", StartTime: "07:30", EndTime: "09:00", Subject: "Biology", Topic: "Genetics", Faculty: "Dr. Dewi Lestari", ClassName: "XII IPA 1", Batch: "2024-A", Room: "R-101", Mode: "offline", Status: "scheduled"},
			{ID: "sch-010", Date: "2024-03-08", StartTime: "09:15", EndTime: "10:45", Subject: "English", Topic: "Reported speech", Faculty: "Mr. Evan Hart", ClassName: "XI IPA 1", Batch: "2024-B", Room: "R-102", Mode: "online", Status: "scheduled"},
			{ID: "sch-011", Date: "2024-03-11", StartTime: "11:00", EndTime: "12:30", Subject: "Mathematics", Topic: "Limits and continuity", Faculty: "Dr. Anita Rao", ClassName: "XI IPA 2", Batch: "2024-A", Room: "Lab-1", Mode: "offline", Status: "scheduled"},
			{ID: "sch-012", Date: "2024-03-11", StartTime: "13:00", EndTime: "14:30", Subject: "Physics", Topic: "Work and energy", Faculty: "Mr. Budi Santoso", ClassName: "XII IPA 1", Batch: "2024-B", Room: "Lab-2", Mode: "offline", Status: "scheduled"},
			{ID: "sch-013", Date: "2024-03-12", StartTime: "07:30", EndTime: "09:00", Subject: "Chemistry", Topic: "Reaction rates", Faculty: "Ms. Clara Wijaya", ClassName: "XI IPA 1", Batch: "2024-A", Room: "R-101", Mode: "offline", Status: "scheduled"},
			{ID: "sch-014", Date: "2024-03-12", StartTime: "09:15", EndTime: "10:45", Subject: "Biology", Topic: "Ecosystems", Faculty: "Dr. Dewi Lestari", ClassName: "XI IPA 2", Batch: "2024-B", Room: "R-102", Mode: "offline", Status: "scheduled"},
			{ID: "sch-015", Date: "2024-03-13", StartTime: "11:00", EndTime: "12:30", Subject: "English", Topic: "Poetry analysis", Faculty: "Mr. Evan Hart", ClassName: "XII IPA 1", Batch: "2024-A", Room: "Lab-1", Mode: "online", Status: "scheduled"},
			{ID: "sch-016", Date: "2024-03-13", StartTime: "13:00", EndTime: "14:30", Subject: "Mathematics", Topic: "Quadratic equations", Faculty: "Dr. Anita Rao", ClassName: "XI IPA 1", Batch: "2024-B", Room: "Lab-2", Mode: "offline", Status: "scheduled"},
			{ID: "sch-017", Date: "2024-03-14", StartTime: "07:30", EndTime: "09:00", Subject: "Physics", Topic: "Kinematics", Faculty: "Mr. Budi Santoso", ClassName: "XI IPA 2", Batch: "2024-A", Room: "R-101", Mode: "offline", Status: "scheduled"},
			{ID: "sch-018", Date: "2024-03-14", StartTime: "09:15", EndTime: "10:45", Subject: "Chemistry", Topic: "Stoichiometry", Faculty: "Ms. Clara Wijaya", ClassName: "XII IPA 1", Batch: "2024-B", Room: "R-102", Mode: "offline", Status: "scheduled"},
			{ID: "sch-019", Date: "2024-03-15", StartTime: "11:00", EndTime: "12:30", Subject: "Biology", Topic: "Cell structure", Faculty: "Dr. Dewi Lestari", ClassName: "XI IPA 1", Batch: "2024-A", Room: "Lab-1", Mode: "offline", Status: "scheduled"},
			{ID: "sch-020", Date: "2024-03-15", StartTime: "13:00", EndTime: "14:30", Subject: "English", Topic: "Essay structure", Faculty: "Mr. Evan Hart", ClassName: "XI IPA 2", Batch: "2024-B", Room: "Lab-2", Mode: "online", Status: "scheduled"},
		},
		Teacher: []ScheduleFixture{
			{ID: "tsch-001", TeacherID: "teacher-rao", Date: "2024-03-04", StartTime: "07:30", EndTime: "09:00", Subject: "Mathematics", Topic: "Quadratic equations", ClassName: "XI IPA 1", Batch: "2024-A", Room: "R-101", Mode: "offline", Status: "completed"},
			{ID: "tsch-002", TeacherID: "teacher-santoso", Date: "2024-03-04", StartTime: "09:15", EndTime: "10:45", Subject: "Physics", Topic: "Newton's laws", ClassName: "XI IPA 2", Batch: "2024-B", Room: "R-102", Mode: "offline", Status: "completed"},
			{ID: "tsch-003", TeacherID: "teacher-rao", Date: "2024-03-05", StartTime: "11:00", EndTime: "12:30", Subject: "Mathematics", Topic: "Limits and continuity", ClassName: "XII IPA 1", Batch: "2024-A", Room: "Lab-1", Mode: "offline", Status: "completed"},
			{ID: "tsch-004", TeacherID: "teacher-santoso", Date: "2024-03-05", StartTime: "13:00", EndTime: "14:30", Subject: "Physics", Topic: "Kinematics", ClassName: "XI IPA 1", Batch: "2024-B", Room: "Lab-2", Mode: "offline", Status: "completed"},
			{ID: "tsch-005", TeacherID: "teacher-rao", Date: "2024-03-06", StartTime: "07:30", EndTime: "09:00", Subject: "Mathematics", Topic: "Trigonometric identities", ClassName: "XI IPA 2", Batch: "2024-A", Room: "R-101", Mode: "offline", Status: "completed"},
			{ID: "tsch-006", TeacherID: "teacher-santoso", Date: "2024-03-06", StartTime: "09:15", EndTime: "10:45", Subject: "Physics", Topic: "Work and energy", ClassName: "XII IPA 1", Batch: "2024-B", Room: "R-102", Mode: "online", Status: "completed"},
			{ID: "tsch-007", TeacherID: "teacher-rao", Date: "2024-03-07", StartTime: "11:00", EndTime: "12:30", Subject: "Mathematics", Topic: "Quadratic equations", ClassName: "XI IPA 1", Batch: "2024-A", Room: "Lab-1", Mode: "offline", Status: "completed"},
			{ID: "tsch-008", TeacherID: "teacher-santoso", Date: "2024-03-07", StartTime: "13:00", EndTime: "14:30", Subject: "Physics", Topic: "Newton's laws", ClassName: "XI IPA 2", Batch: "2024-B", Room: "Lab-2", Mode: "offline", Status: "completed"},
			{ID: "tsch-009", TeacherID: "teacher-rao", Date: "2024-03-08", StartTime: "07:30", EndTime: "09:00", Subject: "Mathematics", Topic: "Limits and continuity", ClassName: "XII IPA 1", Batch: "2024-A", Room: "R-101", Mode: "offline", Status: "scheduled"},
			{ID: "tsch-010", TeacherID: "teacher-santoso", Date: "2024-03-08", StartTime: "09:15", EndTime: "10:45", Subject: "Physics", Topic: "Kinematics", ClassName: "XI IPA 1", Batch: "2024-B", Room: "R-102", Mode: "offline", Status: "scheduled"},
			{ID: "tsch-011", TeacherID: "teacher-rao", Date: "2024-03-11", StartTime: "11:00", EndTime: "12:30", Subject: "Mathematics", Topic: "Trigonometric identities", ClassName: "XI IPA 2", Batch: "2024-A", Room: "Lab-1", Mode: "offline", Status: "scheduled"},
			{ID: "tsch-012", TeacherID: "teacher-santoso", Date: "2024-03-11", StartTime: "13:00", EndTime: "14:30", Subject: "Physics", Topic: "Work and energy", ClassName: "XII IPA 1", Batch: "2024-B", Room: "Lab-2", Mode: "online", Status: "scheduled"},
			{ID: "tsch-013", TeacherID: "teacher-rao", Date: "2024-03-12", StartTime: "07:30", EndTime: "09:00", Subject: "Mathematics", Topic: "Quadratic equations", ClassName: "XI IPA 1", Batch: "2024-A", Room: "R-101", Mode: "offline", Status: "scheduled"},
			{ID: "tsch-014", TeacherID: "teacher-santoso", Date: "2024-03-12", StartTime: "09:15", EndTime: "10:45", Subject: "Physics", Topic: "Newton's laws", ClassName: "XI IPA 2", Batch: "2024-B", Room: "R-102", Mode: "offline", Status: "scheduled"},
			{ID: "tsch-015", TeacherID: "teacher-rao", Date: "2024-03-13", StartTime: "11:00", EndTime: "12:30", Subject: "Mathematics", Topic: "Limits and continuity", ClassName: "XII IPA 1", Batch: "2024-A", Room: "Lab-1", Mode: "offline", Status: "scheduled"},
			{ID: "tsch-016", TeacherID: "teacher-santoso", Date: "2024-03-13", StartTime: "13:00", EndTime: "14:30", Subject: "Physics", Topic: "Kinematics", ClassName: "XI IPA 1", Batch: "2024-B", Room: "Lab-2", Mode: "offline", Status: "scheduled"},
			{ID: "tsch-017", TeacherID: "teacher-rao", Date: "2024-03-14", StartTime: "07:30", EndTime: "09:00", Subject: "Mathematics", Topic: "Trigonometric identities", ClassName: "XI IPA 2", Batch: "2024-A", Room: "R-101", Mode: "offline", Status: "scheduled"},
			{ID: "tsch-018", TeacherID: "teacher-santoso", Date: "2024-03-14", StartTime: "09:15", EndTime: "10:45", Subject: "Physics", Topic: "Work and energy", ClassName: "XII IPA 1", Batch: "2024-B", Room: "R-102", Mode: "online", Status: "scheduled"},
			{ID: "tsch-019", TeacherID: "teacher-rao", Date: "2024-03-15", StartTime: "11:00", EndTime: "12:30", Subject: "Mathematics", Topic: "Quadratic equations", ClassName: "XI IPA 1", Batch: "2024-A", Room: "Lab-1", Mode: "offline", Status: "scheduled"},
			{ID: "tsch-020", TeacherID: "teacher-santoso", Date: "2024-03-15", StartTime: "13:00", EndTime: "14:30", Subject: "Physics", Topic: "Newton's laws", ClassName: "XI IPA 2", Batch: "2024-B", Room: "Lab-2", Mode: "offline", Status: "scheduled"},
		},
	}
}
