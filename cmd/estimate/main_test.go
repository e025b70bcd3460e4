package main

import (
	"bytes"
	"encoding/json"
	"testing"

	service "github.com/okian/tripace/internal/app"
	. "github.com/smartystreets/goconvey/convey"
)

func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	Convey("Given the estimate command", t, func() {
		Convey("When run with the defaults", func() {
			code, out, _ := execute()

			Convey("Then it should print the olympic report", func() {
				So(code, ShouldEqual, exitOK)
				So(out, ShouldContainSubstring, "Olympic triathlon")
				So(out, ShouldContainSubstring, "Estimated finish: 02:40:00")
				So(out, ShouldContainSubstring, "2:00/100m")
				So(out, ShouldContainSubstring, "Focus: Bike (weakest)")
				So(out, ShouldContainSubstring, "70%")
				So(out, ShouldContainSubstring, "Tuesday")
			})
		})

		Convey("When decimal paces are requested as JSON", func() {
			code, out, _ := execute("--category", "iron", "--swim", "2", "-r", "5", "--json")

			Convey("Then the result should decode", func() {
				So(code, ShouldEqual, exitOK)
				var res service.Result
				So(json.Unmarshal([]byte(out), &res), ShouldBeNil)
				So(res.Formatted.Total, ShouldEqual, "10:47:00")
				So(res.Plan.TotalAllocation(), ShouldEqual, 100)
			})
		})

		Convey("When several fields are out of range", func() {
			code, _, errOut := execute("-c", "ultra", "--swim", "2:75", "--bike=0")

			Convey("Then each field should be listed and the exit code non-zero", func() {
				So(code, ShouldEqual, exitInvalid)
				So(errOut, ShouldContainSubstring, "category:")
				So(errOut, ShouldContainSubstring, "swim_seconds:")
				So(errOut, ShouldContainSubstring, "bike_kmh:")
			})
		})

		Convey("When the pace shapes are mixed", func() {
			code, _, errOut := execute("--swim", "2:00", "--run", "5")
			So(code, ShouldEqual, exitUsage)
			So(errOut, ShouldContainSubstring, "both be M:SS")
		})

		Convey("When a pace is not a number", func() {
			code, _, _ := execute("--swim", "fast", "--run", "5")
			So(code, ShouldEqual, exitUsage)
		})

		Convey("When help is requested", func() {
			code, _, errOut := execute("--help")
			So(code, ShouldEqual, exitOK)
			So(errOut, ShouldContainSubstring, "--category")
		})

		Convey("When a flag is unknown", func() {
			code, _, _ := execute("--pace", "1")
			So(code, ShouldEqual, exitUsage)
		})
	})
}
