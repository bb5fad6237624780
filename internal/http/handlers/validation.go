package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Issue is one field-level validation failure, reported with status 400.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// fieldPaths maps request struct fields to their wire names.
var fieldPaths = map[string]string{
	"Title":                 "title",
	"Description":           "description",
	"MaxVotesPerOption":     "maxVotesPerOption",
	"MaxVotesPerAccessCode": "maxVotesPerAccessCode",
	"ClosingAt":             "closingAt",
	"Code":                  "code",
	"Type":                  "type",
	"Text":                  "option",
}

func issueFor(fe validator.FieldError) Issue {
	path, ok := fieldPaths[fe.Field()]
	if !ok {
		path = fe.Field()
	}

	switch {
	case fe.Field() == "Title":
		return Issue{path, "The title is too short."}
	case fe.Field() == "MaxVotesPerOption" && fe.Tag() == "max":
		return Issue{path, "Too many votes per option specified."}
	case fe.Field() == "MaxVotesPerOption":
		return Issue{path, "There must be at least one vote per option."}
	case fe.Field() == "MaxVotesPerAccessCode" && fe.Tag() == "max":
		return Issue{path, "Too many votes per access code specified."}
	case fe.Field() == "MaxVotesPerAccessCode":
		return Issue{path, "There must be at least one vote per access code."}
	case fe.Field() == "ClosingAt":
		return Issue{path, "Invalid date specified."}
	case fe.Field() == "Code":
		return Issue{path, "The access code format is incorrect."}
	case fe.Field() == "Type":
		return Issue{path, "A valid access code type must be specified."}
	case fe.Field() == "Text":
		return Issue{path, "An option must be specified."}
	}
	return Issue{path, "Invalid value."}
}

// bindingIssues translates a ShouldBindJSON error into the issue list the
// client sees. Field errors map one issue per failing field; anything the
// decoder rejects outright becomes a single body-level issue.
func bindingIssues(err error) []Issue {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]Issue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, issueFor(fe))
		}
		return issues
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return []Issue{{Path: ute.Field, Message: "Invalid value for " + ute.Field + "."}}
	}

	// time.Time decode failures surface as parse errors, not type errors.
	if strings.Contains(err.Error(), "parsing time") {
		return []Issue{{Path: "closingAt", Message: "Invalid date specified."}}
	}

	return []Issue{{Path: "body", Message: "The request body could not be parsed."}}
}

func respondIssues(c *gin.Context, issues []Issue) {
	c.JSON(http.StatusBadRequest, gin.H{"issues": issues})
}

// pollIDParam parses the :pollId path parameter, answering the 400 itself
// when the value is not numeric.
func pollIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("pollId"), 10, 64)
	if err != nil {
		respondIssues(c, []Issue{{Path: "pollId", Message: "The poll ID must be a number."}})
		return 0, false
	}
	return id, true
}

func optionIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("optionId"), 10, 64)
	if err != nil {
		respondIssues(c, []Issue{{Path: "optionId", Message: "The option ID must be a number."}})
		return 0, false
	}
	return id, true
}
