//go:build !wasm

package sdk

// Host bindings for non-wasm builds. Tests drive contract logic against an
// in-memory kv store and a settable env snapshot; Abort panics with the reason
// string so callers can assert on it, mirroring the host's call rollback.

type MockCall struct {
	ContractId string
	Method     string
	Payload    string
}

var (
	mockState = map[string]string{}
	mockEnv   Env
	mockLogs  []string
	mockCalls []MockCall
)

// MockReset clears storage, env, logs and recorded calls between tests.
func MockReset() {
	mockState = map[string]string{}
	mockEnv = Env{}
	mockLogs = nil
	mockCalls = nil
}

// MockSetEnv installs the env snapshot returned by GetEnv/GetEnvKey.
func MockSetEnv(env Env) {
	mockEnv = env
}

// MockLogs returns every line logged since the last reset.
func MockLogs() []string {
	return mockLogs
}

// MockCalls returns the outbound contract calls recorded since the last reset.
func MockCalls() []MockCall {
	return mockCalls
}

func Log(s string) {
	mockLogs = append(mockLogs, s)
}

func Abort(msg string) {
	panic(msg)
}

func StateSetObject(key string, value string) {
	mockState[key] = value
}

func StateGetObject(key string) *string {
	val, ok := mockState[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(mockState, key)
}

func GetEnv() Env {
	return mockEnv
}

func GetEnvKey(key string) *string {
	var val string
	switch key {
	case "contract.id":
		val = mockEnv.ContractId
	case "tx.id":
		val = mockEnv.TxId
	case "block.id":
		val = mockEnv.BlockId
	case "block.timestamp":
		val = mockEnv.Timestamp
	case "msg.sender":
		val = mockEnv.Sender.Address.String()
	case "msg.caller":
		val = mockEnv.Caller.Address.String()
	default:
		return nil
	}
	return &val
}

func ContractCall(contractId string, method string, payload string) *string {
	mockCalls = append(mockCalls, MockCall{ContractId: contractId, Method: method, Payload: payload})
	result := ""
	return &result
}
