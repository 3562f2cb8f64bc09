package web

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/passcheck/internal/predict"
	"github.com/abhisek/passcheck/internal/student"
)

// predictRequest is the body of POST / and POST /api/predict. Parental
// education options contain an apostrophe, so they are checked by
// student.Record.Validate rather than a oneof tag.
type predictRequest struct {
	Gender            string `json:"gender" form:"gender" binding:"required,oneof=female male"`
	RaceEthnicity     string `json:"race_ethnicity" form:"race_ethnicity" binding:"required,oneof='group A' 'group B' 'group C' 'group D' 'group E'"`
	ParentalEducation string `json:"parental_level_of_education" form:"parental_level_of_education" binding:"required"`
	Lunch             string `json:"lunch" form:"lunch" binding:"required,oneof=standard free/reduced"`
	TestPrep          string `json:"test_preparation_course" form:"test_preparation_course" binding:"required,oneof=none completed"`
	Math              *int   `json:"math_score" form:"math_score" binding:"required,min=0,max=100"`
	Reading           *int   `json:"reading_score" form:"reading_score" binding:"required,min=0,max=100"`
	Writing           *int   `json:"writing_score" form:"writing_score" binding:"required,min=0,max=100"`
}

func (r predictRequest) record() student.Record {
	return student.Record{
		Gender:            r.Gender,
		RaceEthnicity:     r.RaceEthnicity,
		ParentalEducation: r.ParentalEducation,
		Lunch:             r.Lunch,
		TestPrep:          r.TestPrep,
		Math:              *r.Math,
		Reading:           *r.Reading,
		Writing:           *r.Writing,
	}
}

type predictResponse struct {
	predict.Result
	Message string `json:"message"`
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) showForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", newPageData(student.DefaultRecord()))
}

func (s *Server) submitForm(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBind(&req); err != nil {
		data := newPageData(student.DefaultRecord())
		data.Error = "Invalid input: " + err.Error()
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}

	rec := req.record()
	data := newPageData(rec)
	res, err := s.run(c, rec)
	if err != nil {
		data.Error = err.Error()
		c.HTML(statusFor(err), "index.html", data)
		return
	}
	data.Result = newResultView(res)
	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Server) predictJSON(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	res, err := s.run(c, req.record())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, predictResponse{Result: res, Message: res.Tier.Message()})
}

// run predicts rec and logs the outcome against the request ID.
func (s *Server) run(c *gin.Context, rec student.Record) (predict.Result, error) {
	reqID := c.GetString(requestIDKey)
	res, err := s.predictor.Predict(rec)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			s.logger.Error("Prediction failed", "error", err, "request_id", reqID)
		} else {
			s.logger.Warn("Rejected student record", "error", err, "request_id", reqID)
		}
		return predict.Result{}, err
	}
	s.logger.Info("Prediction served",
		"label", res.Label,
		"tier", res.Tier,
		"probability_of_pass", res.ProbabilityOfPass,
		"request_id", reqID)
	return res, nil
}

// statusFor maps input errors to 400 and everything else to 500.
func statusFor(err error) int {
	var catErr *student.UnknownCategoryError
	var rangeErr *student.ScoreRangeError
	if errors.As(err, &catErr) || errors.As(err, &rangeErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func newPageData(r student.Record) pageData {
	labels := []string{"Gender", "Race/Ethnicity", "Parental Level of Education", "Lunch Type", "Test Preparation Course"}
	names := []string{"gender", "race_ethnicity", "parental_level_of_education", "lunch", "test_preparation_course"}
	values := []string{r.Gender, r.RaceEthnicity, r.ParentalEducation, r.Lunch, r.TestPrep}

	var d pageData
	for i, tb := range student.Tables() {
		d.Fields = append(d.Fields, field{
			Name:     names[i],
			Label:    labels[i],
			Options:  tb.Options(),
			Selected: values[i],
		})
	}
	d.Scores = []score{
		{Name: "math_score", Label: "Math Score", Value: r.Math},
		{Name: "reading_score", Label: "Reading Score", Value: r.Reading},
		{Name: "writing_score", Label: "Writing Score", Value: r.Writing},
	}
	return d
}

func newResultView(res predict.Result) *resultView {
	return &resultView{
		Pass:        res.Label == predict.LabelPass,
		Headline:    res.Headline(),
		Probability: res.FormatProbability(),
		Percent:     int(math.Round(res.ProbabilityOfPass * 100)),
		Tier:        string(res.Tier),
		Message:     res.Tier.Message(),
	}
}
