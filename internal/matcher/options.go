package matcher

// Programs is the canonical reference list of degree programs offered in
// the selection screens. Order here is the order options are rendered in.
var Programs = []string{
	"Bachelor of Science in Information Technology",
	"Bachelor of Science in Computer Science",
	"Bachelor of Science in Information Systems",
	"Bachelor of Science in Computer Engineering",
	"Bachelor of Science in Electronics Engineering",
	"Bachelor of Science in Civil Engineering",
	"Bachelor of Science in Accountancy",
	"Bachelor of Science in Business Administration",
	"Bachelor of Science in Hospitality Management",
	"Bachelor of Science in Tourism Management",
	"Bachelor of Science in Nursing",
	"Bachelor of Science in Psychology",
	"Bachelor of Arts in Communication",
	"Bachelor of Arts in Political Science",
	"Bachelor of Secondary Education",
	"Bachelor of Elementary Education",
}

// Fields is the canonical reference list of internship fields
var Fields = []string{
	"Software Development",
	"Web Development",
	"Mobile Development",
	"Quality Assurance",
	"Data Analytics",
	"Network Administration",
	"Technical Support",
	"Cybersecurity",
	"UI/UX Design",
	"Digital Marketing",
	"Human Resources",
	"Accounting and Finance",
	"Hospitality and Tourism",
	"Healthcare",
	"Education",
}
