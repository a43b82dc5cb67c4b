package batch_test

import (
	"encoding/json"
	"testing"

	"github.com/docuflow/mockocr/internal/domain/batch"
	"github.com/smartystreets/goconvey/convey"
)

func TestDemoScan(t *testing.T) {
	convey.Convey("Given the canned scan result", t, func() {
		res := batch.DemoScan()

		convey.Convey("Then it should contain exactly one file result", func() {
			convey.So(res.Results, convey.ShouldHaveLength, 1)
			convey.So(res.Results[0].File, convey.ShouldEqual, "demo.png")
		})

		convey.Convey("Then the flattened fields should mirror the file data", func() {
			convey.So(res.Fields, convey.ShouldResemble, res.Results[0].Data)
			convey.So(res.Fields.Vendor, convey.ShouldEqual, "Demo Store")
			convey.So(res.Fields.Total, convey.ShouldEqual, "12.34")
			convey.So(res.Fields.TransactionDate, convey.ShouldEqual, "2024-01-01")
		})

		convey.Convey("Then the batch id should be stable", func() {
			convey.So(res.BatchID, convey.ShouldEqual, "mock-batch-1")
		})

		convey.Convey("Then repeated calls should return identical values", func() {
			convey.So(batch.DemoScan(), convey.ShouldResemble, res)
		})

		convey.Convey("Then it should serialize with the wire field names", func() {
			raw, err := json.Marshal(res)
			convey.So(err, convey.ShouldBeNil)
			convey.So(string(raw), convey.ShouldContainSubstring, `"batchId":"mock-batch-1"`)
			convey.So(string(raw), convey.ShouldContainSubstring, `"transactionDate":"2024-01-01"`)
		})
	})
}

func TestDemoReceipt(t *testing.T) {
	convey.Convey("Given the canned receipt", t, func() {
		r := batch.DemoReceipt()

		convey.Convey("Then it should acknowledge with the fixed item id", func() {
			convey.So(r.OK, convey.ShouldBeTrue)
			convey.So(r.ItemID, convey.ShouldEqual, "mock-1234")
		})
	})
}
