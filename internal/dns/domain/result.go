package domain

// Result is a decoded DoH response: the DNS status code plus the answer
// records in server order. A non-NOERROR status with zero answers is a
// valid result, not an error; NXDOMAIN is data, transport failures are
// errors.
type Result struct {
	Status  RCode
	Answers []Answer
	Comment string
}

// HasAnswers returns true if the result contains any answer records.
func (r Result) HasAnswers() bool {
	return len(r.Answers) > 0
}

// AnswerCount returns the number of answer records in the result.
func (r Result) AnswerCount() int {
	return len(r.Answers)
}
