// Package i4004 provides the instruction table of the 4-bit accumulator machine.
//
// # Instruction Format
//
// Instructions are 8 or 16 bits wide. The first byte carries the opcode in its
// upper nibble and a 4 bit operand (condition, register, register pair or
// immediate) in its lower nibble. Two byte instructions carry ROM data or an
// address in the second byte:
//
//	JCN c, a     0001 cccc  aaaa aaaa
//	FIM Rp, D    0010 ppp0  DDDD DDDD
//	JUN A        0100 AAAA  AAAA AAAA
//	ADD r        1000 rrrr
//
// The 12 bit long address of JUN and JMS is the only operand that spans both
// bytes: its upper nibble is stored in the opcode byte.
//
// # Registers
//
// The machine has 16 index registers of 4 bits, written as R0 to R9 in source,
// that are grouped into register pairs R0R1, R2R3 and so on. A register pair is
// encoded by its index, which is the number of its even register divided by two.
package i4004
