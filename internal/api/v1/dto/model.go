package dto

// ModelName is the closed set of model names accepted by GET /model/:model_name
type ModelName string

const (
	ModelAlexNet ModelName = "alexnet"
	ModelResNet  ModelName = "resnet"
	ModelLeNet   ModelName = "lenet"
)

var modelMessages = map[ModelName]string{
	ModelAlexNet: "Deep learning FTW!",
	ModelLeNet:   "LeCNN all the images",
	ModelResNet:  "Have some residual",
}

// IsValid reports whether m is one of the known models
func (m ModelName) IsValid() bool {
	_, ok := modelMessages[m]
	return ok
}

// Values lists the accepted model names in declaration order
func (m ModelName) Values() []string {
	return []string{string(ModelAlexNet), string(ModelResNet), string(ModelLeNet)}
}

// Message returns the fixed message for the model
func (m ModelName) Message() string {
	return modelMessages[m]
}

// ModelPath is the model name path segment
type ModelPath struct {
	ModelName ModelName `uri:"model_name" binding:"enum"`
}

// ModelResponse is returned by GET /model/:model_name
type ModelResponse struct {
	ModelName ModelName `json:"model_name"`
	Message   string    `json:"message"`
}

// SumPath holds the two integers of GET /sum/:num1/:num2
type SumPath struct {
	Num1 int64 `uri:"num1"`
	Num2 int64 `uri:"num2"`
}

// MessageResponse is a single-message body
type MessageResponse struct {
	Message string `json:"message"`
}
