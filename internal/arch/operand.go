package arch

// OperandKind is the semantic role and bit encoding of an instruction argument.
type OperandKind uint8

// Operand kinds.
const (
	OperandNone         OperandKind = iota // unused slot
	OperandCondition                       // jump condition, 4 bits
	OperandRegister                        // index register, 4 bits
	OperandRegisterPair                    // register pair, 3 bits at bit 1
	OperandImmediate                       // immediate data, 4 bits
	OperandROMData                         // 8 bit data in the second byte
	OperandShortAddress                    // 8 bit address in the second byte
	OperandLongAddress                     // 12 bit address spanning both bytes
)

// OperandInfo is the position of an operand inside the encoded instruction word.
// Bit positions of 8 and above refer to the second byte.
type OperandInfo struct {
	BitPosition uint8
	Width       uint8
}

var operandInfos = [...]OperandInfo{
	OperandNone:         {},
	OperandCondition:    {BitPosition: 0, Width: 4},
	OperandRegister:     {BitPosition: 0, Width: 4},
	OperandRegisterPair: {BitPosition: 1, Width: 3},
	OperandImmediate:    {BitPosition: 0, Width: 4},
	OperandROMData:      {BitPosition: 8, Width: 8},
	OperandShortAddress: {BitPosition: 8, Width: 8},
	OperandLongAddress:  {BitPosition: 8, Width: 12},
}

var operandNames = [...]string{
	OperandNone:         "none",
	OperandCondition:    "condition",
	OperandRegister:     "register",
	OperandRegisterPair: "register pair",
	OperandImmediate:    "immediate",
	OperandROMData:      "ROM data",
	OperandShortAddress: "short address",
	OperandLongAddress:  "long address",
}

// Info returns the bit position and width of the operand kind.
func (k OperandKind) Info() OperandInfo {
	if int(k) >= len(operandInfos) {
		return OperandInfo{}
	}
	return operandInfos[k]
}

// Mask returns the value mask for the field width of the operand kind.
func (k OperandKind) Mask() uint32 {
	return 1<<k.Info().Width - 1
}

// String implements the fmt.Stringer interface.
func (k OperandKind) String() string {
	if int(k) >= len(operandNames) {
		return "unknown"
	}
	return operandNames[k]
}
