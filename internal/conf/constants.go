package conf

// TableSize - Number of buckets in the student table, fixed for the lifetime of a register
const TableSize int64 = 10

// MaxNameLen - Size of the name field, a stored name holds at most MaxNameLen - 1 characters
const MaxNameLen int = 50

// MaxLineLen - Nominal length of a line in a bulk load file, used as read buffer size. Longer lines are still read whole
const MaxLineLen int = 100

// MaxSubjects - Capacity of the subject registry and number of subject rows in each attendance matrix
const MaxSubjects int = 10

// MaxDays - Number of day columns in each attendance matrix, days are addressed 1 to MaxDays
const MaxDays int = 31

// SuffixModulus - Modulus giving the abbreviated (last four digits) form of a student id
const SuffixModulus int64 = 10000

// ViewBlockDays - Number of days per block in the paged attendance view, the last block takes the remainder
const ViewBlockDays int = 10

// ViewBlocks - Number of blocks in the paged attendance view
const ViewBlocks int = 3

// ReportIDWidth - Width of the ID column in the attendance report
const ReportIDWidth int = 10

// ReportNameWidth - Width of the Name column in the attendance report
const ReportNameWidth int = 30

// ViewSubjectWidth - Width of the Subject column in the attendance view
const ViewSubjectWidth int = 20

// RuleWidth - Length of separator rules in reports and views
const RuleWidth int = 86
