package results

// OperationResult carries either a success payload or a business failure.
// Infrastructure errors are returned separately as a plain error.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

// SuccessResult builds a successful result.
func SuccessResult[S any, F any](s S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &s}
}

// FailureResult builds a failed result.
func FailureResult[S any, F any](f F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &f}
}

// IsSuccess reports whether the result holds a success payload.
func (r OperationResult[S, F]) IsSuccess() bool {
	return r.Success != nil
}

// IsFailure reports whether the result holds a failure payload.
func (r OperationResult[S, F]) IsFailure() bool {
	return r.Failure != nil
}

// HandlerResult is a topic/payload pair produced from an OperationResult.
type HandlerResult struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

// MapToHandlerResults converts the result into a single handler result routed
// to the success or failure topic. Empty results map to nothing.
func (r OperationResult[S, F]) MapToHandlerResults(successTopic, failureTopic string) []HandlerResult {
	switch {
	case r.IsSuccess():
		return []HandlerResult{{Topic: successTopic, Payload: *r.Success}}
	case r.IsFailure():
		return []HandlerResult{{Topic: failureTopic, Payload: *r.Failure}}
	default:
		return nil
	}
}
