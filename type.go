package clone

import (
	"reflect"
	"time"

	"github.com/go-leo/clone/object"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var (
	recordType      = reflect.TypeOf((*object.Record)(nil))
	plainRecordType = reflect.TypeOf(map[string]any(nil))

	timeType        = reflect.TypeOf(time.Time{})
	timePtrType     = reflect.TypeOf((*time.Time)(nil))
	timestampPBType = reflect.TypeOf((*timestamppb.Timestamp)(nil))
)
