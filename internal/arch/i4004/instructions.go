package i4004

import "github.com/retroenv/asm4004/internal/arch"

// Instructions of the machine, see the package documentation for the encoding.
var (
	Nop = &arch.Instruction{Name: "NOP", Opcode: 0x00, Size: 1}                                                                                // no operation
	Jcn = &arch.Instruction{Name: "JCN", Opcode: 0x10, Size: 2, Operands: []arch.OperandKind{arch.OperandCondition, arch.OperandShortAddress}} // jump conditional
	Fim = &arch.Instruction{Name: "FIM", Opcode: 0x20, Size: 2, Operands: []arch.OperandKind{arch.OperandRegisterPair, arch.OperandROMData}}   // fetch immediate into register pair
	Src = &arch.Instruction{Name: "SRC", Opcode: 0x21, Size: 1, Operands: []arch.OperandKind{arch.OperandRegisterPair}}                        // send register control
	Fin = &arch.Instruction{Name: "FIN", Opcode: 0x30, Size: 1, Operands: []arch.OperandKind{arch.OperandRegisterPair}}                        // fetch indirect from ROM
	Jin = &arch.Instruction{Name: "JIN", Opcode: 0x31, Size: 1, Operands: []arch.OperandKind{arch.OperandRegisterPair}}                        // jump indirect
	Jun = &arch.Instruction{Name: "JUN", Opcode: 0x40, Size: 2, Operands: []arch.OperandKind{arch.OperandLongAddress, arch.OperandNone}}       // jump unconditional
	Jms = &arch.Instruction{Name: "JMS", Opcode: 0x50, Size: 2, Operands: []arch.OperandKind{arch.OperandLongAddress, arch.OperandNone}}       // jump to subroutine
	Inc = &arch.Instruction{Name: "INC", Opcode: 0x60, Size: 1, Operands: []arch.OperandKind{arch.OperandRegister}}                            // increment register
	Isz = &arch.Instruction{Name: "ISZ", Opcode: 0x70, Size: 2, Operands: []arch.OperandKind{arch.OperandRegister, arch.OperandShortAddress}}  // increment and skip if zero
	Add = &arch.Instruction{Name: "ADD", Opcode: 0x80, Size: 1, Operands: []arch.OperandKind{arch.OperandRegister}}                            // add register to accumulator
	Sub = &arch.Instruction{Name: "SUB", Opcode: 0x90, Size: 1, Operands: []arch.OperandKind{arch.OperandRegister}}                            // subtract register from accumulator
	Ld  = &arch.Instruction{Name: "LD", Opcode: 0xA0, Size: 1, Operands: []arch.OperandKind{arch.OperandRegister}}                             // load register into accumulator
	Xch = &arch.Instruction{Name: "XCH", Opcode: 0xB0, Size: 1, Operands: []arch.OperandKind{arch.OperandRegister}}                            // exchange accumulator and register
	Bbl = &arch.Instruction{Name: "BBL", Opcode: 0xC0, Size: 1, Operands: []arch.OperandKind{arch.OperandImmediate}}                           // branch back and load
	Ldm = &arch.Instruction{Name: "LDM", Opcode: 0xD0, Size: 1, Operands: []arch.OperandKind{arch.OperandImmediate}}                           // load immediate into accumulator
	Wrm = &arch.Instruction{Name: "WRM", Opcode: 0xE0, Size: 1}                                                                                // write accumulator to RAM
	Wmp = &arch.Instruction{Name: "WMP", Opcode: 0xE1, Size: 1}                                                                                // write RAM output port
	Wrr = &arch.Instruction{Name: "WRR", Opcode: 0xE2, Size: 1}                                                                                // write ROM output port
	Wpm = &arch.Instruction{Name: "WPM", Opcode: 0xE3, Size: 1}                                                                                // write program RAM
	Wr0 = &arch.Instruction{Name: "WR0", Opcode: 0xE4, Size: 1}                                                                                // write status character 0
	Wr1 = &arch.Instruction{Name: "WR1", Opcode: 0xE5, Size: 1}                                                                                // write status character 1
	Wr2 = &arch.Instruction{Name: "WR2", Opcode: 0xE6, Size: 1}                                                                                // write status character 2
	Wr3 = &arch.Instruction{Name: "WR3", Opcode: 0xE7, Size: 1}                                                                                // write status character 3
	Sbm = &arch.Instruction{Name: "SBM", Opcode: 0xE8, Size: 1}                                                                                // subtract RAM from accumulator
	Rdm = &arch.Instruction{Name: "RDM", Opcode: 0xE9, Size: 1}                                                                                // read RAM
	Rdr = &arch.Instruction{Name: "RDR", Opcode: 0xEA, Size: 1}                                                                                // read ROM input port
	Adm = &arch.Instruction{Name: "ADM", Opcode: 0xEB, Size: 1}                                                                                // add RAM to accumulator
	Rd0 = &arch.Instruction{Name: "RD0", Opcode: 0xEC, Size: 1}                                                                                // read status character 0
	Rd1 = &arch.Instruction{Name: "RD1", Opcode: 0xED, Size: 1}                                                                                // read status character 1
	Rd2 = &arch.Instruction{Name: "RD2", Opcode: 0xEE, Size: 1}                                                                                // read status character 2
	Rd3 = &arch.Instruction{Name: "RD3", Opcode: 0xEF, Size: 1}                                                                                // read status character 3
	Clb = &arch.Instruction{Name: "CLB", Opcode: 0xF0, Size: 1}                                                                                // clear accumulator and carry
	Clc = &arch.Instruction{Name: "CLC", Opcode: 0xF1, Size: 1}                                                                                // clear carry
	Iac = &arch.Instruction{Name: "IAC", Opcode: 0xF2, Size: 1}                                                                                // increment accumulator
	Cmc = &arch.Instruction{Name: "CMC", Opcode: 0xF3, Size: 1}                                                                                // complement carry
	Cma = &arch.Instruction{Name: "CMA", Opcode: 0xF4, Size: 1}                                                                                // complement accumulator
	Ral = &arch.Instruction{Name: "RAL", Opcode: 0xF5, Size: 1}                                                                                // rotate left through carry
	Rar = &arch.Instruction{Name: "RAR", Opcode: 0xF6, Size: 1}                                                                                // rotate right through carry
	Tcc = &arch.Instruction{Name: "TCC", Opcode: 0xF7, Size: 1}                                                                                // transmit carry and clear
	Dac = &arch.Instruction{Name: "DAC", Opcode: 0xF8, Size: 1}                                                                                // decrement accumulator
	Tcs = &arch.Instruction{Name: "TCS", Opcode: 0xF9, Size: 1}                                                                                // transfer carry subtract
	Stc = &arch.Instruction{Name: "STC", Opcode: 0xFA, Size: 1}                                                                                // set carry
	Daa = &arch.Instruction{Name: "DAA", Opcode: 0xFB, Size: 1}                                                                                // decimal adjust accumulator
	Kbp = &arch.Instruction{Name: "KBP", Opcode: 0xFC, Size: 1}                                                                                // keyboard process
	Dcl = &arch.Instruction{Name: "DCL", Opcode: 0xFD, Size: 1}                                                                                // designate command line
)

// Instructions contains all instructions of the machine.
var Instructions = []*arch.Instruction{
	Nop, Jcn, Fim, Src, Fin, Jin, Jun, Jms,
	Inc, Isz, Add, Sub, Ld, Xch, Bbl, Ldm,
	Wrm, Wmp, Wrr, Wpm, Wr0, Wr1, Wr2, Wr3,
	Sbm, Rdm, Rdr, Adm, Rd0, Rd1, Rd2, Rd3,
	Clb, Clc, Iac, Cmc, Cma, Ral, Rar, Tcc,
	Dac, Tcs, Stc, Daa, Kbp, Dcl,
}
