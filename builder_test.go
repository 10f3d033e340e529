package clone_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-leo/clone"
	"github.com/go-leo/clone/object"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCloner(t *testing.T) {
	Convey("Given a default cloner", t, func() {
		cloner := clone.New()

		Convey("Its policy is empty", func() {
			So(cloner.Policy(), ShouldResemble, clone.Policy{})
		})

		Convey("Chaining returns configured copies and leaves the receiver alone", func() {
			deep := cloner.IncludeInheritance().And().IncludeArrays()
			So(deep.Policy(), ShouldResemble, clone.Policy{IncludeInheritance: true, IncludeArrays: true})
			So(cloner.Policy(), ShouldResemble, clone.Policy{})

			arrays := cloner.IncludeArrays()
			So(arrays.Policy().IncludeArrays, ShouldBeTrue)
			So(arrays.Policy().IncludeInheritance, ShouldBeFalse)
		})

		Convey("Options given to New are applied", func() {
			So(clone.New(clone.IncludeArrays()).Policy().IncludeArrays, ShouldBeTrue)
			So(clone.New(clone.WithPolicy(clone.Policy{IncludeInheritance: true})).Policy().IncludeInheritance, ShouldBeTrue)
		})

		Convey("Primitives pass through From", func() {
			So(cloner.From("the dude"), ShouldEqual, "the dude")
			So(cloner.From(42), ShouldEqual, 42)
			So(cloner.From(nil), ShouldBeNil)
		})

		Convey("Array elements are shared unless IncludeArrays is chained", func() {
			when := time.Date(2013, 9, 1, 0, 0, 0, 0, time.UTC)
			stub := []any{&when}

			shared := cloner.From(stub).([]any)
			So(shared[0], ShouldPointTo, stub[0])

			copied := cloner.IncludeArrays().From(stub).([]any)
			So(copied[0], ShouldNotPointTo, stub[0])
			So(*copied[0].(*time.Time), ShouldResemble, when)
		})

		Convey("Parents are shared unless IncludeInheritance is chained", func() {
			base := object.FromMap(map[string]any{"spam": "eggs"})
			derived := object.Create(base, object.Field{Key: "foo", Property: object.Data("bar")})

			shared := cloner.From(derived).(*object.Record)
			So(shared.Parent(), ShouldPointTo, base)

			copied := cloner.IncludeInheritance().From(derived).(*object.Record)
			So(copied.Parent(), ShouldNotPointTo, base)
			So(copied.Parent().String(), ShouldEqual, base.String())
			So(copied.Parent().Parent(), ShouldPointTo, object.Base())
		})

		Convey("TryFrom reports depth errors and From panics with them", func() {
			limited := clone.New(clone.MaxDepth(1))
			stub := map[string]any{"a": map[string]any{}}

			_, err := limited.TryFrom(stub)
			So(errors.Is(err, clone.ErrTooDeep), ShouldBeTrue)
			So(func() { limited.From(stub) }, ShouldPanic)
		})
	})
}

func TestClassify(t *testing.T) {
	Convey("Every value falls in exactly one category", t, func() {
		when := time.Now()
		So(clone.Classify(nil), ShouldEqual, clone.Primitive)
		So(clone.Classify(1), ShouldEqual, clone.Primitive)
		So(clone.Classify("s"), ShouldEqual, clone.Primitive)
		So(clone.Classify(func() {}), ShouldEqual, clone.Primitive)
		So(clone.Classify([]byte("buf")), ShouldEqual, clone.Primitive)
		So(clone.Classify(map[int]string{}), ShouldEqual, clone.Primitive)
		So(clone.Classify(struct{}{}), ShouldEqual, clone.Primitive)
		So(clone.Classify(when), ShouldEqual, clone.Timestamp)
		So(clone.Classify(&when), ShouldEqual, clone.Timestamp)
		So(clone.Classify([]any{}), ShouldEqual, clone.Sequence)
		So(clone.Classify([3]int{}), ShouldEqual, clone.Sequence)
		So(clone.Classify(object.New()), ShouldEqual, clone.Record)
		So(clone.Classify(map[string]any{}), ShouldEqual, clone.Record)
		So(clone.Classify(map[string]int{}), ShouldEqual, clone.Record)
		So(clone.Classify(headers{}), ShouldEqual, clone.Record)
		So(clone.Classify(&struct{}{}), ShouldEqual, clone.Primitive)
	})

	Convey("Categories have names", t, func() {
		So(clone.Primitive.String(), ShouldEqual, "primitive")
		So(clone.Timestamp.String(), ShouldEqual, "timestamp")
		So(clone.Sequence.String(), ShouldEqual, "sequence")
		So(clone.Record.String(), ShouldEqual, "record")
		So(clone.Category(42).String(), ShouldEqual, "unknown")
	})
}
