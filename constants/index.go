package constants

const (
	DATA_INPUT_IS_NOT_NUMBER   = "DATA INPUT IS NOT NUMBER"
	ERROR_INPUT                = "INPUT INVALID"
	ERROR_PARSE_DATA_TO_LOCALS = "PARSE DATA TO LOCALS FAIL"
	NOT_FOUND_RECORDS          = "RECORDS NOT FOUND"
	ORDER_VALIDATION_FAILED    = "ORDER VALIDATION FAILED"
	DISPATCH_IN_FLIGHT         = "ANOTHER DISPATCH IS IN PROGRESS"
	REMOTE_CALL_FAILED         = "REMOTE SERVICE CALL FAILED"
	COUPON_NOT_FOUND           = "COUPON CODE NOT FOUND"
)

// OrderUpdateChannel is the redis pub/sub channel the order service
// publishes change notifications on.
const OrderUpdateChannel = "orders:update"
