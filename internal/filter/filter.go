// Copyright 2026 The sb2dot Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package filter decodes the closed sum type of sandbox filter kinds.
// The numeric filter ID alone determines both the variant and how its
// filter_arg is interpreted; the high bit (0x80) on a handful of IDs
// selects the regex-table variant of the same underlying kind.
package filter

import "fmt"

// Kind is a filter's numeric ID, doubling as its variant tag.
type Kind uint8

// The closed set of recognized filter kinds. Values with the high bit set
// (e.g. [KindRegex] = [KindLiteral]|0x80) are the regex-table counterpart of
// the plain-string kind declared just above them.
const (
	KindLiteral                   Kind = 1
	KindRegex                     Kind = KindLiteral | 0x80
	KindMountRelativePath         Kind = 2
	KindMountRelativeRegex        Kind = KindMountRelativePath | 0x80
	KindXattr                     Kind = 3
	KindFileMode                  Kind = 4
	KindIPCPosixName              Kind = 5
	KindIPCPosixRegex             Kind = KindIPCPosixName | 0x80
	KindGlobalName                Kind = 6
	KindGlobalNameRegex           Kind = KindGlobalName | 0x80
	KindLocalName                 Kind = 7
	KindLocalNameRegex            Kind = KindLocalName | 0x80
	KindLocalNetwork              Kind = 8
	KindRemoteNetwork             Kind = 9
	KindControlName               Kind = 10
	KindSocketDomain              Kind = 11
	KindSocketType                Kind = 12
	KindSocketProtocol            Kind = 13
	KindTarget                    Kind = 14
	KindFSCTLCommand              Kind = 15
	KindIOCTLCommand              Kind = 16
	KindIOKitUserClientClass      Kind = 17
	KindIOKitUserClientClassRegex Kind = KindIOKitUserClientClass | 0x80
	KindIOKitProperty             Kind = 18
	KindIOKitPropertyRegex        Kind = KindIOKitProperty | 0x80
	KindIOKitConnection           Kind = 19
	KindDeviceMajor               Kind = 20
	KindDeviceMinor               Kind = 21
	KindDeviceConformsTo          Kind = 22
	KindExtension                 Kind = 23
	KindExtensionClass            Kind = 24
	KindAppleeventDestination     Kind = 25
	KindDebugMode                 Kind = 26
	KindRightName                 Kind = 27
	KindPreferenceDomain          Kind = 28
	KindVnodeType                 Kind = 29
	KindEntitlement               Kind = 30
	KindEntitlementBooleanCompare Kind = 31
	KindEntitlementStringCompare  Kind = 32
	KindKextBundleID              Kind = 33
	KindInfoType                  Kind = 34
	KindNotificationName          Kind = 35
	KindNotificationPayload       Kind = 36
	KindSemaphoreOwner            Kind = 37
	KindSysctlName                Kind = 38
	KindProcessName               Kind = 39
	KindRootlessBootDevice        Kind = 40
	KindRootlessFile              Kind = 41
	KindRootlessDisk              Kind = 42
	KindRootlessProc              Kind = 43
	KindPrivilegeID               Kind = 44
	KindProcessAttribute          Kind = 45
	KindUID                       Kind = 46
	KindNvramVariable             Kind = 47
	KindNvramVariableRegex        Kind = KindNvramVariable | 0x80
	KindCsr                       Kind = 48
	KindHostSpecialPort           Kind = 49
)

// NeedsStringPool reports whether this kind's arg is a string-pool offset
// (decoded via [bincur.Cursor.ReadStringAt] or the no-pad variant).
func (k Kind) NeedsStringPool() bool {
	switch k {
	case KindLiteral, KindMountRelativePath, KindIPCPosixName, KindGlobalName,
		KindLocalName, KindControlName, KindIOKitUserClientClass, KindIOKitProperty,
		KindIOKitConnection, KindDeviceConformsTo, KindExtension, KindExtensionClass,
		KindAppleeventDestination, KindRightName, KindPreferenceDomain, KindEntitlement,
		KindEntitlementBooleanCompare, KindEntitlementStringCompare, KindKextBundleID,
		KindInfoType, KindNotificationName, KindSysctlName, KindProcessName,
		KindNvramVariable:
		return true
	}
	return false
}

// NoPad reports whether the string-pool read for this kind skips the usual
// one-byte pad (kinds 23 and 30 only).
func (k Kind) NoPad() bool {
	return k == KindExtension || k == KindEntitlement
}

// NeedsRegexTable reports whether this kind's arg is a regex-table index.
func (k Kind) NeedsRegexTable() bool {
	switch k {
	case KindRegex, KindMountRelativeRegex, KindIPCPosixRegex, KindGlobalNameRegex,
		KindLocalNameRegex, KindIOKitUserClientClassRegex, KindIOKitPropertyRegex,
		KindNvramVariableRegex:
		return true
	}
	return false
}

// NeedsNetwork reports whether this kind's arg is a network descriptor.
func (k Kind) NeedsNetwork() bool {
	return k == KindLocalNetwork || k == KindRemoteNetwork
}

// Known reports whether k is one of the recognized filter IDs; anything
// else renders through the generic-fixme form.
func (k Kind) Known() bool {
	if k.NeedsStringPool() || k.NeedsRegexTable() || k.NeedsNetwork() {
		return true
	}
	switch k {
	case KindXattr, KindFileMode, KindSocketDomain, KindSocketType,
		KindSocketProtocol, KindTarget, KindFSCTLCommand, KindIOCTLCommand,
		KindDeviceMajor, KindDeviceMinor, KindDebugMode, KindVnodeType,
		KindNotificationPayload, KindSemaphoreOwner, KindRootlessBootDevice,
		KindRootlessFile, KindRootlessDisk, KindRootlessProc, KindPrivilegeID,
		KindProcessAttribute, KindUID, KindCsr, KindHostSpecialPort:
		return true
	}
	return false
}

// Filter is one decoded, pretty-printable filter node argument. Which of
// Str (a string-pool value, or a regex-table entry resolved by [Decode]),
// Net, or the raw Arg is printed is determined entirely by Kind.
type Filter struct {
	Kind Kind
	Arg  uint16
	Str  string
	Net  NetworkArg
}

// NetworkArg is the resolved (named) form of a local/remote network filter
// argument.
type NetworkArg struct {
	Type string
	Addr string
	Port string
}

// NewNetworkArg builds the network-arg presentation from a raw (typ, addr, port)
// triple, per filters.py's NetworkFilter.
func NewNetworkArg(typ, addr uint8, port uint16) NetworkArg {
	n := NetworkArg{}
	switch typ {
	case 0x0b:
		n.Type = "udp"
	case 0x07:
		n.Type = "tcp"
	default:
		n.Type = "unknown"
	}
	if addr == 0 {
		n.Addr = "*"
	} else {
		n.Addr = "localhost"
	}
	if port == 0 {
		n.Port = "*"
	} else {
		n.Port = fmt.Sprintf("%d", port)
	}
	return n
}

// String renders a filter exactly as the original pretty-printer would,
// token for token.
func (f *Filter) String() string {
	switch f.Kind {
	case KindLiteral:
		return fmt.Sprintf(`(literal "%s")`, f.Str)
	case KindRegex:
		return fmt.Sprintf(`(regex #"%s")`, f.Str)
	case KindMountRelativePath:
		return fmt.Sprintf(`(mount-relative-path "%s")`, f.Str)
	case KindMountRelativeRegex:
		return fmt.Sprintf(`(mount-relative-regex #"%s")`, f.Str)
	case KindXattr:
		return fmt.Sprintf("(xattr %d)", f.Arg)
	case KindFileMode:
		return fmt.Sprintf("(file-mode #o%04o)", f.Arg)
	case KindIPCPosixName:
		return fmt.Sprintf(`(ipc-posix-name "%s")`, f.Str)
	case KindIPCPosixRegex:
		return fmt.Sprintf(`(ipc-posix-name-regex #"%s")`, f.Str)
	case KindGlobalName:
		return fmt.Sprintf(`(global-name "%s")`, f.Str)
	case KindGlobalNameRegex:
		return fmt.Sprintf(`(global-name-regex #"%s")`, f.Str)
	case KindLocalName:
		return fmt.Sprintf(`(local-name "%s")`, f.Str)
	case KindLocalNameRegex:
		return fmt.Sprintf(`(local-name-regex #"%s")`, f.Str)
	case KindLocalNetwork:
		return fmt.Sprintf(`(local "%s:%s:%s")`, f.Net.Type, f.Net.Addr, f.Net.Port)
	case KindRemoteNetwork:
		return fmt.Sprintf(`(remote "%s:%s:%s")`, f.Net.Type, f.Net.Addr, f.Net.Port)
	case KindControlName:
		return fmt.Sprintf(`(control-name "%s")`, f.Str)
	case KindSocketDomain:
		return fmt.Sprintf("(socket-domain %s)", socketDomainName(f.Arg))
	case KindSocketType:
		return fmt.Sprintf("(socket-type %d)", f.Arg)
	case KindSocketProtocol:
		return fmt.Sprintf("(socket-protocol %s)", socketProtocolName(f.Arg))
	case KindTarget:
		return fmt.Sprintf("(target %s)", targetName(f.Arg))
	case KindFSCTLCommand:
		return fmt.Sprintf("(fsctl-command %#x)", f.Arg)
	case KindIOCTLCommand:
		return fmt.Sprintf("(ioctl-command %#x)", f.Arg)
	case KindIOKitUserClientClass:
		return fmt.Sprintf(`(iokit-user-client-class "%s")`, f.Str)
	case KindIOKitUserClientClassRegex:
		return fmt.Sprintf(`(iokit-user-client-class-regex #"%s")`, f.Str)
	case KindIOKitProperty:
		return fmt.Sprintf(`(iokit-property "%s")`, f.Str)
	case KindIOKitPropertyRegex:
		return fmt.Sprintf(`(iokit-property-regex #"%s")`, f.Str)
	case KindIOKitConnection:
		return fmt.Sprintf(`(iokit-connection "%s")`, f.Str)
	case KindDeviceMajor:
		return fmt.Sprintf("(device-major %d)", f.Arg)
	case KindDeviceMinor:
		return fmt.Sprintf("(device-minor %d)", f.Arg)
	case KindDeviceConformsTo:
		return fmt.Sprintf(`(device-conforms-to "%s")`, f.Str)
	case KindExtension:
		return fmt.Sprintf(`(extension "%s")`, f.Str)
	case KindExtensionClass:
		return fmt.Sprintf(`(extension-class "%s")`, f.Str)
	case KindAppleeventDestination:
		return fmt.Sprintf(`(appleevent-destination "%s")`, f.Str)
	case KindDebugMode:
		return "(debug-mode)"
	case KindRightName:
		return fmt.Sprintf(`(right-name "%s")`, f.Str)
	case KindPreferenceDomain:
		return fmt.Sprintf(`(preference-domain "%s")`, f.Str)
	case KindVnodeType:
		return fmt.Sprintf("(vnode-type %s)", vnodeTypeName(f.Arg))
	case KindEntitlement:
		return fmt.Sprintf(`(entitlement "%s")`, f.Str)
	case KindEntitlementBooleanCompare:
		if f.Arg != 0 {
			return "(entitlement-boolean-compare true)"
		}
		return "(entitlement-boolean-compare false)"
	case KindEntitlementStringCompare:
		return fmt.Sprintf(`(entitlement-string-compare "%s")`, f.Str)
	case KindKextBundleID:
		return fmt.Sprintf(`(kext-bundle-id "%s")`, f.Str)
	case KindInfoType:
		return fmt.Sprintf(`(info-type "%s")`, f.Str)
	case KindNotificationName:
		return fmt.Sprintf(`(notification-name "%s")`, f.Str)
	case KindNotificationPayload:
		return "(notification-payload)"
	case KindSemaphoreOwner:
		return fmt.Sprintf("(semaphore-owner %s)", targetLikeName(f.Arg, true))
	case KindSysctlName:
		return fmt.Sprintf(`(sysctl-name "%s")`, f.Str)
	case KindProcessName:
		return fmt.Sprintf(`(process-name "%s")`, f.Str)
	case KindRootlessBootDevice:
		return "(rootless-boot-device-filter)"
	case KindRootlessFile:
		return "(rootless-file-filter)"
	case KindRootlessDisk:
		return "(rootless-disk-filter)"
	case KindRootlessProc:
		return "(rootless-proc-filter)"
	case KindPrivilegeID:
		return fmt.Sprintf("(privilege-id %s)", privilegeIDName(f.Arg))
	case KindProcessAttribute:
		return fmt.Sprintf("(process-attribute %s)", processAttributeName(f.Arg))
	case KindUID:
		return fmt.Sprintf("(uid %d)", f.Arg)
	case KindNvramVariable:
		return fmt.Sprintf(`(nvram-variable "%s")`, f.Str)
	case KindNvramVariableRegex:
		return fmt.Sprintf(`(nvram-variable-regex "%s")`, f.Str)
	case KindCsr:
		return fmt.Sprintf("(csr %s)", csrName(f.Arg))
	case KindHostSpecialPort:
		return fmt.Sprintf("(host-special-port %s)", hostSpecialPortName(f.Arg))
	default:
		return fmt.Sprintf("(generic-fixme-filter 0x%2x 0x%04x)", uint8(f.Kind), f.Arg)
	}
}
